package main

import (
	"os"

	"github.com/kerem/campuscore/internal/pkg/logger"
	"github.com/kerem/campuscore/internal/server"
)

// @title CampusCore API
// @version 1.0
// @description College administration backend: students, courses, faculty, fees, marks, attendance, enrollments and institutional statistics.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT access token.
func main() {
	srv, err := server.NewServer("configs/config.yaml")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
