package main

import (
	"os"

	"github.com/konaseema/zpportal/internal/pkg/logger"
	"github.com/konaseema/zpportal/internal/server"
)

// @title ZP School Portal API
// @version 1.0
// @description API for the Zilla Parishad high schools portal of Konaseema district
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@zpschools.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewAPIServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
