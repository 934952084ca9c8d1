package main

import (
	"os"

	"github.com/konaseema/zpportal/internal/pkg/logger"
	"github.com/konaseema/zpportal/internal/server"
)

func main() {
	srv, err := server.NewPortalServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize portal")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Portal execution failed or shutdown encountered errors")
		os.Exit(1)
	}
	logger.Info().Msg("Portal finished gracefully.")
}
