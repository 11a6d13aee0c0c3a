package main

import (
	"os"

	"github.com/amit20042003/Liberary/internal/pkg/logger"
	"github.com/amit20042003/Liberary/internal/server"
)

// @title Liberary API
// @version 1.0
// @description Seat and subscription management API for study libraries
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@liberary.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
