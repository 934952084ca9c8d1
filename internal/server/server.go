package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/bootstrap"
)

// Server runs one HTTP handler until the process is signalled.
type Server struct {
	name    string
	addr    string
	handler http.Handler
	closers []func()
	logger  zerolog.Logger
	http    *http.Server
}

// NewAPIServer wires the backend API: config, database, migrations, seed
// data and routes.
func NewAPIServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, database, lgr)

	return &Server{
		name:    "api",
		addr:    ":" + cfg.Server.Port,
		handler: router,
		closers: []func(){database.Close},
		logger:  lgr,
	}, nil
}

// NewPortalServer wires the server-rendered portal. It needs no database,
// only the API base URL.
func NewPortalServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	handler, err := bootstrap.SetupPortal(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup portal: %w", err)
	}

	return &Server{
		name:    "portal",
		addr:    ":" + cfg.Portal.Port,
		handler: handler,
		logger:  lgr,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("server", s.name).Str("addr", s.addr).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         s.addr,
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.close()
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = fmt.Errorf("%s server shutdown completed with errors: %w", s.name, err)
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	s.close()
	s.logger.Info().Str("server", s.name).Msg("Server shutdown process complete.")
	return shutdownErr
}

func (s *Server) close() {
	for _, closeFn := range s.closers {
		closeFn()
	}
	s.closers = nil
}
