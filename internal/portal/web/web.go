// Package web serves the server-rendered portal. Every request restores
// its session from cookies, passes the route guard and renders a view
// whose data comes from the backend API.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/portal/apiclient"
	"github.com/konaseema/zpportal/internal/portal/resource"
	"github.com/konaseema/zpportal/internal/portal/route"
	"github.com/konaseema/zpportal/internal/portal/session"
)

const (
	sessionKey    = "portalSession"
	csrfFieldName = "csrf_token"
)

// Config holds the portal web settings.
type Config struct {
	// CSRFKey must be 32 bytes.
	CSRFKey        []byte
	SecureCookies  bool
	RequestTimeout time.Duration
}

// Handler renders the portal pages.
type Handler struct {
	api    *apiclient.Client
	guard  *route.Guard
	cfg    Config
	logger zerolog.Logger
	pages  map[string]*template.Template
}

// New parses the embedded templates and returns a handler backed by api.
func New(api *apiclient.Client, cfg Config, logger zerolog.Logger) (*Handler, error) {
	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 8 * time.Second
	}
	return &Handler{
		api:    api,
		guard:  route.NewGuard(route.DefaultFallback),
		cfg:    cfg,
		logger: logger,
		pages:  pages,
	}, nil
}

// Protect wraps the portal with CSRF protection for its forms.
func Protect(next http.Handler, cfg Config) (http.Handler, error) {
	if len(cfg.CSRFKey) != 32 {
		return nil, fmt.Errorf("csrf key must be 32 bytes, got %d", len(cfg.CSRFKey))
	}
	protected := csrf.Protect(cfg.CSRFKey,
		csrf.Secure(cfg.SecureCookies),
		csrf.Path("/"),
		csrf.FieldName(csrfFieldName),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)(next)

	if cfg.SecureCookies {
		return protected, nil
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	}), nil
}

// Register mounts every portal route on router.
func (h *Handler) Register(router gin.IRouter) {
	router.Use(h.withSession())

	public := h.require(route.Public)
	authed := h.require(route.Authenticated)
	staff := h.require(route.Staff)

	router.GET("/", public, h.home)
	router.POST("/login", public, h.login)
	router.POST("/register", public, h.register)
	router.POST("/logout", public, h.logout)
	router.POST("/theme", public, h.toggleTheme)

	router.GET("/schools", public, h.schools)
	router.GET("/schools/:id", public, h.schoolDetail)
	router.GET("/alumni", public, h.alumni)
	router.GET("/events", public, h.events)
	router.POST("/events/:id/rsvp", authed, h.rsvp)
	router.GET("/donations", public, h.donations)
	router.POST("/donations", public, h.donate)
	router.GET("/forum", public, h.placeholder("Forum", "The discussion forum is under development."))
	router.GET("/notices", public, h.placeholder("Notices", "The notice board is under development."))

	router.GET("/dashboard", authed, h.dashboard)
	router.GET("/profile", authed, h.profile)
	router.GET("/chat", authed, h.placeholder("Chat", "Chat is coming soon."))

	router.GET("/admin", staff, h.admin)
	router.POST("/admin/users/:id/approve", staff, h.approve)
}

// withSession restores the visitor's session from the token cookie.
func (h *Handler) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := session.NewStore(h.api, &cookieStorage{c: c, secure: h.cfg.SecureCookies}, h.logger)
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.RequestTimeout)
		if err := store.Bootstrap(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("Session bootstrap failed")
		}
		cancel()

		c.Set(sessionKey, store)
		c.Next()
	}
}

func storeOf(c *gin.Context) *session.Store {
	value, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	store, _ := value.(*session.Store)
	return store
}

func sessionOf(c *gin.Context) route.Session {
	if store := storeOf(c); store != nil {
		return store
	}
	return nil
}

func (h *Handler) require(capability route.Capability) gin.HandlerFunc {
	return h.guard.Middleware(capability, sessionOf)
}

// client returns an API client carrying the visitor's token.
func (h *Handler) client(c *gin.Context) *apiclient.Client {
	if store := storeOf(c); store != nil {
		return h.api.WithToken(store.Token())
	}
	return h.api
}

// bind ties a view to the request: fetches are bounded by the request
// timeout and the view is torn down when the visitor goes away.
func (h *Handler) bind(c *gin.Context, ctrl *resource.Controller) (context.Context, func()) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.RequestTimeout)
	stop := context.AfterFunc(c.Request.Context(), ctrl.Close)
	return ctx, func() {
		stop()
		cancel()
		ctrl.Close()
	}
}

// dropStaleSession logs the visitor out when the backend rejected the
// token. It reports whether that happened.
func (h *Handler) dropStaleSession(c *gin.Context, err error) bool {
	if !apiclient.IsUnauthorized(err) {
		return false
	}
	if store := storeOf(c); store != nil && store.IsAuthenticated() {
		h.logger.Info().Msg("Backend rejected session token, logging out")
		store.Logout()
		return true
	}
	return false
}

func (h *Handler) redirect(c *gin.Context, path string, flash *resource.Notification) {
	if flash != nil {
		setFlash(c, *flash, h.cfg.SecureCookies)
	}
	c.Redirect(http.StatusSeeOther, path)
}

func success(message string) *resource.Notification {
	return &resource.Notification{Kind: resource.NoticeSuccess, Message: message}
}

func failure(message string) *resource.Notification {
	return &resource.Notification{Kind: resource.NoticeError, Message: message}
}

// submitStatus maps a failed submission to the status of the re-rendered
// form.
func submitStatus(err error) int {
	if resource.IsValidation(err) {
		return http.StatusUnprocessableEntity
	}
	status := apiclient.StatusOf(err)
	if status >= 400 && status < 500 {
		return status
	}
	if errors.Is(err, resource.ErrNotLoaded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

func (h *Handler) timeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.RequestTimeout)
}
