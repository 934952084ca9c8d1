package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/konaseema/zpportal/internal/app/auth"
	appControllers "github.com/konaseema/zpportal/internal/app/controllers"
	appMigrations "github.com/konaseema/zpportal/internal/app/migrations"
	appRepos "github.com/konaseema/zpportal/internal/app/repositories"
	appRoutes "github.com/konaseema/zpportal/internal/app/routes"
	appServices "github.com/konaseema/zpportal/internal/app/services"
	"github.com/konaseema/zpportal/internal/config"
	"github.com/konaseema/zpportal/internal/db"
	appMiddleware "github.com/konaseema/zpportal/internal/middleware"
	pkgAuth "github.com/konaseema/zpportal/internal/pkg/auth"
	"github.com/konaseema/zpportal/internal/pkg/email"
	"github.com/konaseema/zpportal/internal/pkg/helpers"
	"github.com/konaseema/zpportal/internal/pkg/logger"
	"github.com/konaseema/zpportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	EmailService   email.EmailService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Metrics        *appMiddleware.Metrics
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format)
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the sample data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		opts := seed.Options{AdminEmail: cfg.Seed.AdminEmail, AdminPassword: cfg.Seed.AdminPassword}
		if err := seed.Run(ctx, appRepos.NewSchoolRepository(database.Pool), appRepos.NewUserRepository(database.Pool), opts, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	if database == nil || database.Pool == nil {
		return nil, fmt.Errorf("database pool is required")
	}

	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 168*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		PortalURL: "http://localhost:" + cfg.Portal.Port,
	}, logger.Component("email"))

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository)

	authService := appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, deps.EmailService, lgr)
	schoolService := appServices.NewSchoolService(deps.Repos.SchoolRepository)
	alumniService := appServices.NewAlumniService(deps.Repos.AlumniRepository, deps.AuthzService)
	donationService := appServices.NewDonationService(deps.Repos.DonationRepository, lgr)
	eventService := appServices.NewEventService(deps.Repos.EventRepository)
	contentService := appServices.NewContentService(deps.Repos.ContentRepository)
	needService := appServices.NewSchoolNeedService(deps.Repos.SchoolNeedRepository)
	adminService := appServices.NewAdminService(
		deps.Repos.UserRepository,
		deps.Repos.StatsRepository,
		deps.AuthzService,
		deps.EmailService,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(authService, lgr),
		School:      appControllers.NewSchoolController(schoolService),
		Alumni:      appControllers.NewAlumniController(alumniService),
		Donation:    appControllers.NewDonationController(donationService),
		Event:       appControllers.NewEventController(eventService),
		Content:     appControllers.NewContentController(contentService),
		SchoolNeed:  appControllers.NewSchoolNeedController(needService),
		Admin:       appControllers.NewAdminController(adminService),
		Placeholder: appControllers.NewPlaceholderController(),
	}

	deps.Metrics = appMiddleware.NewMetrics("api")

	return deps, nil
}

// SetGinMode switches gin to release mode in production.
func SetGinMode(cfg *config.Config, lgr zerolog.Logger) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database *db.PostgresDB, lgr zerolog.Logger) *gin.Engine {
	SetGinMode(cfg, lgr)
	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.CORS.AllowedOrigins),
		deps.Metrics.Middleware(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/health", func(c *gin.Context) {
		if err := database.Healthy(c.Request.Context()); err != nil {
			lgr.Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
	})
	router.GET("/metrics", deps.Metrics.Handler())

	return router
}
