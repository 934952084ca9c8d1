package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/portal/resource"
	"github.com/konaseema/zpportal/internal/portal/route"
	"github.com/konaseema/zpportal/internal/portal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageFiles = []string{
	"home.html",
	"schools.html",
	"school.html",
	"alumni.html",
	"events.html",
	"donations.html",
	"admin.html",
	"dashboard.html",
	"profile.html",
	"placeholder.html",
}

// Raw HTML in markdown is escaped since WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// formatMoney renders rupees with thousands separators, showing paise only
// when there are any.
func formatMoney(amount float64) string {
	cents := int64(math.Round(amount * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	digits := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if paise := cents % 100; paise != 0 {
		return fmt.Sprintf("%s₹%s.%02d", sign, b.String(), paise)
	}
	return sign + "₹" + b.String()
}

var funcMap = template.FuncMap{
	"markdown": renderMarkdown,
	"money":    formatMoney,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006")
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"percent": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 0, 64) + "%"
	},
}

func parseTemplates() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, page := range pageFiles {
		tmpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		pages[page] = tmpl
	}
	return pages, nil
}

// pageData is what every template receives.
type pageData struct {
	Title     string
	Path      string
	Theme     session.Theme
	User      *models.User
	IsStaff   bool
	Nav       []route.NavItem
	CSRFField template.HTML
	Flash     *resource.Notification
	RetryURL  string
	View      any
	Form      any
	Message   string
}

func (h *Handler) page(c *gin.Context, title string) *pageData {
	store := storeOf(c)
	data := &pageData{
		Title:     title,
		Path:      c.Request.URL.Path,
		Theme:     themeOf(c),
		CSRFField: csrf.TemplateField(c.Request),
		Flash:     popFlash(c, h.cfg.SecureCookies),
	}
	if store != nil {
		data.User = store.User()
		data.IsStaff = store.IsStaff()
		data.Nav = route.Navigation(store, c.Request.URL.Path)
	}
	return data
}

// withView attaches a loaded view. Failed loads get a retry link that
// repeats the same GET, and a pending view notice replaces the flash.
func (d *pageData) withView(c *gin.Context, view any, ctrl *resource.Controller) *pageData {
	d.View = view
	if ctrl.State() != resource.StateLoaded && ctrl.State() != resource.StateSubmitting {
		d.RetryURL = c.Request.URL.RequestURI()
	}
	if notice, ok := ctrl.Notice(); ok {
		d.Flash = &notice
	}
	return d
}

func (h *Handler) render(c *gin.Context, status int, page string, data *pageData) {
	tmpl, ok := h.pages[page]
	if !ok {
		h.logger.Error().Str("page", page).Msg("Unknown template")
		c.String(500, "internal server error")
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		h.logger.Error().Err(err).Str("page", page).Msg("Failed to render template")
		c.String(500, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
