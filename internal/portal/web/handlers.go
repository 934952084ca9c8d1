package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/pkg/validation"
	"github.com/konaseema/zpportal/internal/portal/apiclient"
	"github.com/konaseema/zpportal/internal/portal/resource"
	"github.com/konaseema/zpportal/internal/portal/route"
	"github.com/konaseema/zpportal/internal/portal/session"
	"github.com/konaseema/zpportal/internal/portal/views"
)

type loginForm struct {
	Email string
}

type registerForm struct {
	Email string
	Name  string
	Phone string
	Role  string
}

// homeForms holds both forms of the landing page.
type homeForms struct {
	Login    loginForm
	Register registerForm
	Roles    []models.RoleType
}

func (h *Handler) home(c *gin.Context) {
	data := h.page(c, "Home")
	data.Form = homeForms{Roles: models.SelfRegisterRoles}
	h.render(c, http.StatusOK, "home.html", data)
}

func (h *Handler) login(c *gin.Context) {
	store := storeOf(c)
	creds := session.Credentials{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	ctx, cancel := h.timeout(c)
	defer cancel()

	user, err := store.Login(ctx, creds)
	if err != nil {
		status := http.StatusUnauthorized
		message := "Invalid email or password"
		switch {
		case errors.Is(err, session.ErrMissingCredentials):
			status = http.StatusUnprocessableEntity
			message = "Email and password are required"
		case apiclient.StatusOf(err) == 0 || apiclient.StatusOf(err) >= 500:
			status = http.StatusBadGateway
			message = apiclient.MessageOf(err)
		}
		h.logger.Info().Err(err).Str("email", creds.Email).Msg("Portal login failed")

		data := h.page(c, "Home")
		data.Flash = failure(message)
		data.Form = homeForms{Login: loginForm{Email: creds.Email}, Roles: models.SelfRegisterRoles}
		h.render(c, status, "home.html", data)
		return
	}

	h.redirect(c, "/dashboard", success("Welcome back, "+user.Name+"!"))
}

func (h *Handler) register(c *gin.Context) {
	form := registerForm{
		Email: strings.TrimSpace(c.PostForm("email")),
		Name:  strings.TrimSpace(c.PostForm("name")),
		Phone: strings.TrimSpace(c.PostForm("phone")),
		Role:  strings.TrimSpace(c.PostForm("role")),
	}
	password := c.PostForm("password")

	fail := func(status int, message string) {
		data := h.page(c, "Home")
		data.Flash = failure(message)
		data.Form = homeForms{Register: form, Roles: models.SelfRegisterRoles}
		h.render(c, status, "home.html", data)
	}

	req, err := form.request(password)
	if err != nil {
		fail(http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx, cancel := h.timeout(c)
	defer cancel()

	if _, err := h.api.Register(ctx, req); err != nil {
		h.logger.Info().Err(err).Str("email", req.Email).Msg("Portal registration rejected")
		fail(submitStatus(err), apiclient.MessageOf(err))
		return
	}

	store := storeOf(c)
	if _, err := store.Login(ctx, session.Credentials{Email: req.Email, Password: password}); err != nil {
		h.redirect(c, "/", success("Registration successful, please log in"))
		return
	}
	h.redirect(c, "/dashboard", success("Registration successful!"))
}

func (f registerForm) request(password string) (dto.RegisterRequest, error) {
	if !validation.IsEmail(f.Email) {
		return dto.RegisterRequest{}, errors.New("a valid email is required")
	}
	if len(password) < 6 {
		return dto.RegisterRequest{}, errors.New("password must be at least 6 characters")
	}
	if len(f.Name) < 2 {
		return dto.RegisterRequest{}, errors.New("name is required")
	}

	req := dto.RegisterRequest{Email: f.Email, Password: password, Name: f.Name}
	if f.Role != "" {
		role := models.RoleType(f.Role)
		allowed := false
		for _, r := range models.SelfRegisterRoles {
			if r == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return dto.RegisterRequest{}, errors.New("please choose a valid role")
		}
		req.Role = role
	}
	if f.Phone != "" {
		phone := f.Phone
		req.Phone = &phone
	}
	return req, nil
}

func (h *Handler) logout(c *gin.Context) {
	storeOf(c).Logout()
	h.redirect(c, "/", success("You have been logged out"))
}

func (h *Handler) toggleTheme(c *gin.Context) {
	next := themeOf(c).Toggle()
	setCookie(c, ThemeCookie, string(next), themeMaxAge, h.cfg.SecureCookies)
	c.Redirect(http.StatusSeeOther, safeNext(c.PostForm("next")))
}

func (h *Handler) placeholder(title, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := h.page(c, title)
		data.Message = message
		h.render(c, http.StatusOK, "placeholder.html", data)
	}
}

func (h *Handler) schools(c *gin.Context) {
	view := views.NewSchoolDirectory(h.client(c), c.Query("q"), h.logger)
	ctx, done := h.bind(c, view.Controller)
	defer done()

	h.load(c, ctx, view.Controller)
	h.render(c, http.StatusOK, "schools.html", h.page(c, "Schools").withView(c, view, view.Controller))
}

func (h *Handler) schoolDetail(c *gin.Context) {
	view := views.NewSchoolDetail(h.client(c), c.Param("id"), h.logger)
	ctx, done := h.bind(c, view.Controller)
	defer done()

	h.load(c, ctx, view.Controller)

	status := http.StatusOK
	title := "School"
	if view.NotFound() {
		status = http.StatusNotFound
		title = "School not found"
	} else if s := view.School(); s != nil {
		title = s.Name
	}
	h.render(c, status, "school.html", h.page(c, title).withView(c, view, view.Controller))
}

func (h *Handler) alumni(c *gin.Context) {
	view := views.NewAlumniPortal(h.client(c), h.logger)
	ctx, done := h.bind(c, view.Controller)
	defer done()

	h.load(c, ctx, view.Controller)
	h.render(c, http.StatusOK, "alumni.html", h.page(c, "Alumni").withView(c, view, view.Controller))
}

func (h *Handler) events(c *gin.Context) {
	view := views.NewEvents(h.client(c), h.logger)
	ctx, done := h.bind(c, view.Controller)
	defer done()

	h.load(c, ctx, view.Controller)
	h.render(c, http.StatusOK, "events.html", h.page(c, "Events").withView(c, view, view.Controller))
}

func (h *Handler) rsvp(c *gin.Context) {
	view := views.NewEvents(h.client(c), h.logger)
	ctx, done := h.bind(c, view.Controller)
	defer done()

	if !h.loadForSubmit(c, ctx, view.Controller, views.SliceEvents, "Events", "events.html", "/events", view, nil) {
		return
	}
	if err := view.RSVP(ctx, c.Param("id")); err != nil {
		h.submitFailed(c, err, "Events", "events.html", "/events", view, view.Controller, nil)
		return
	}
	notice, _ := view.Notice()
	h.redirect(c, "/events", &notice)
}

func (h *Handler) donations(c *gin.Context) {
	view := views.NewDonations(h.client(c), h.logger)
	ctx, done := h.bind(c, view.Controller)
	defer done()

	h.load(c, ctx, view.Controller)
	data := h.page(c, "Donations").withView(c, view, view.Controller)
	data.Form = views.DonationForm{SchoolID: c.Query("school")}
	h.render(c, http.StatusOK, "donations.html", data)
}

func (h *Handler) donate(c *gin.Context) {
	form := views.DonationForm{
		DonorName:  c.PostForm("donor_name"),
		DonorEmail: c.PostForm("donor_email"),
		Amount:     c.PostForm("amount"),
		SchoolID:   c.PostForm("school_id"),
		Purpose:    c.PostForm("purpose"),
	}

	view := views.NewDonations(h.client(c), h.logger)

	// A form that cannot be sent is answered without touching the backend.
	if _, err := form.Request(); err != nil {
		data := h.page(c, "Donations")
		data.View = view
		data.Form = form
		data.Flash = failure(err.Error())
		h.render(c, http.StatusUnprocessableEntity, "donations.html", data)
		return
	}

	ctx, done := h.bind(c, view.Controller)
	defer done()

	if !h.loadForSubmit(c, ctx, view.Controller, views.SliceDonations, "Donations", "donations.html", "/donations", view, form) {
		return
	}
	if err := view.Donate(ctx, form); err != nil {
		h.submitFailed(c, err, "Donations", "donations.html", "/donations", view, view.Controller, form)
		return
	}
	notice, _ := view.Notice()
	h.redirect(c, "/donations", &notice)
}

// dashboard greets the member and lists what is coming up.
func (h *Handler) dashboard(c *gin.Context) {
	view := views.NewEvents(h.client(c), h.logger)
	ctx, done := h.bind(c, view.Controller)
	defer done()

	if h.load(c, ctx, view.Controller) {
		c.Redirect(http.StatusFound, route.DefaultFallback)
		return
	}
	h.render(c, http.StatusOK, "dashboard.html", h.page(c, "Dashboard").withView(c, view, view.Controller))
}

func (h *Handler) profile(c *gin.Context) {
	h.render(c, http.StatusOK, "profile.html", h.page(c, "Profile"))
}

func (h *Handler) admin(c *gin.Context) {
	view := views.NewAdminDashboard(h.client(c), h.logger)
	ctx, done := h.bind(c, view.Controller)
	defer done()

	if h.load(c, ctx, view.Controller) {
		c.Redirect(http.StatusFound, route.DefaultFallback)
		return
	}
	h.render(c, http.StatusOK, "admin.html", h.page(c, "Admin").withView(c, view, view.Controller))
}

func (h *Handler) approve(c *gin.Context) {
	view := views.NewAdminDashboard(h.client(c), h.logger)
	ctx, done := h.bind(c, view.Controller)
	defer done()

	if !h.loadForSubmit(c, ctx, view.Controller, views.SliceUsers, "Admin", "admin.html", "/admin", view, nil) {
		return
	}
	if err := view.Approve(ctx, c.Param("id")); err != nil {
		h.submitFailed(c, err, "Admin", "admin.html", "/admin", view, view.Controller, nil)
		return
	}
	notice, _ := view.Notice()
	h.redirect(c, "/admin", &notice)
}

// load fetches every slice of ctrl. Partial failures stay on the page. It
// reports whether the backend rejected the session token.
func (h *Handler) load(c *gin.Context, ctx context.Context, ctrl *resource.Controller) bool {
	err := ctrl.Load(ctx)
	if err == nil {
		return false
	}
	if !errors.Is(err, resource.ErrClosed) && !errors.Is(err, resource.ErrSuperseded) {
		h.logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Some page data failed to load")
	}
	return h.dropStaleSession(c, err)
}

// loadForSubmit loads the view a form submits into. Only the target slice
// has to load; a failed sibling stays on the page. When the target failed
// the page is rendered with the submitted form and false is returned.
func (h *Handler) loadForSubmit(c *gin.Context, ctx context.Context, ctrl *resource.Controller, target, title, page, retry string, view, form any) bool {
	if h.load(c, ctx, ctrl) {
		c.Redirect(http.StatusSeeOther, route.DefaultFallback)
		return false
	}
	if ctrl.Loaded(target) {
		return true
	}
	data := h.page(c, title).withView(c, view, ctrl)
	data.RetryURL = retry
	data.Form = form
	data.Flash = failure("Could not load the page, please try again")
	h.render(c, http.StatusBadGateway, page, data)
	return false
}

// submitFailed re-renders the page with the submitted form so the visitor
// can correct it.
func (h *Handler) submitFailed(c *gin.Context, err error, title, page, retry string, view any, ctrl *resource.Controller, form any) {
	if h.dropStaleSession(c, err) {
		c.Redirect(http.StatusSeeOther, route.DefaultFallback)
		return
	}
	data := h.page(c, title).withView(c, view, ctrl)
	if data.RetryURL != "" {
		data.RetryURL = retry
	}
	data.Form = form
	h.render(c, submitStatus(err), page, data)
}
