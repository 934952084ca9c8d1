package bootstrap

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/config"
	appMiddleware "github.com/konaseema/zpportal/internal/middleware"
	"github.com/konaseema/zpportal/internal/pkg/logger"
	"github.com/konaseema/zpportal/internal/portal/apiclient"
	"github.com/konaseema/zpportal/internal/portal/web"
)

// SetupPortal builds the server-rendered portal in front of the API.
func SetupPortal(cfg *config.Config, lgr zerolog.Logger) (http.Handler, error) {
	SetGinMode(cfg, lgr)

	csrfKey, err := portalCSRFKey(cfg, lgr)
	if err != nil {
		return nil, err
	}
	webCfg := web.Config{
		CSRFKey:        csrfKey,
		SecureCookies:  cfg.Portal.SecureCookies,
		RequestTimeout: cfg.Portal.RequestTimeout,
	}

	api := apiclient.New(cfg.Portal.APIBaseURL, &http.Client{Timeout: cfg.Portal.RequestTimeout}, logger.Component("apiclient"))
	handler, err := web.New(api, webCfg, logger.Component("portal"))
	if err != nil {
		return nil, fmt.Errorf("failed to set up portal pages: %w", err)
	}

	metrics := appMiddleware.NewMetrics("portal")

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		metrics.Middleware(),
	)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", metrics.Handler())

	handler.Register(router)

	lgr.Info().Str("api", cfg.Portal.APIBaseURL).Msg("Portal configured")
	return web.Protect(router, webCfg)
}

// portalCSRFKey returns the configured key or, when none is set, a random
// one. Forms then stop validating after a restart.
func portalCSRFKey(cfg *config.Config, lgr zerolog.Logger) ([]byte, error) {
	if cfg.Portal.CSRFKey != "" {
		key := []byte(cfg.Portal.CSRFKey)
		if len(key) != 32 {
			return nil, fmt.Errorf("portal csrf key must be 32 bytes, got %d", len(key))
		}
		return key, nil
	}

	if cfg.IsProduction() {
		lgr.Warn().Msg("PORTAL_CSRF_KEY is not set, generating a random key")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate csrf key: %w", err)
	}
	return key, nil
}
