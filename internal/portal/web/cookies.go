package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/portal/resource"
	"github.com/konaseema/zpportal/internal/portal/session"
)

// Cookie names of the durable client state.
const (
	TokenCookie = "zp_token"
	ThemeCookie = "zp_theme"
	FlashCookie = "zp_flash"
)

const (
	tokenMaxAge = 7 * 24 * 60 * 60
	themeMaxAge = 365 * 24 * 60 * 60
)

func setCookie(c *gin.Context, name, value string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}

// cookieStorage keeps the session token in the zp_token cookie.
type cookieStorage struct {
	c      *gin.Context
	secure bool
}

func (s *cookieStorage) Load() (string, bool) {
	token, err := s.c.Cookie(TokenCookie)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (s *cookieStorage) Save(token string) error {
	setCookie(s.c, TokenCookie, token, tokenMaxAge, s.secure)
	return nil
}

func (s *cookieStorage) Clear() error {
	setCookie(s.c, TokenCookie, "", -1, s.secure)
	return nil
}

func themeOf(c *gin.Context) session.Theme {
	value, _ := c.Cookie(ThemeCookie)
	return session.ParseTheme(value)
}

func setFlash(c *gin.Context, n resource.Notification, secure bool) {
	setCookie(c, FlashCookie, string(n.Kind)+"|"+n.Message, 60, secure)
}

// popFlash returns and clears the notification left by the previous
// request.
func popFlash(c *gin.Context, secure bool) *resource.Notification {
	value, err := c.Cookie(FlashCookie)
	if err != nil || value == "" {
		return nil
	}
	setCookie(c, FlashCookie, "", -1, secure)

	kind, message, ok := strings.Cut(value, "|")
	if !ok || message == "" {
		return nil
	}
	n := resource.Notification{Kind: resource.NoticeKind(kind), Message: message}
	if n.Kind != resource.NoticeSuccess {
		n.Kind = resource.NoticeError
	}
	return &n
}

// safeNext returns path when it is a local path, else "/".
func safeNext(path string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	return path
}
