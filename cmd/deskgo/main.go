package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/deskwise/deskgo/docs"
	"github.com/deskwise/deskgo/internal/app"
	"github.com/deskwise/deskgo/internal/config"
)

// @title deskgo API
// @version 1.0
// @description Office desk-reservation service: floor plan, bookings, occupancy counts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
		os.Exit(1)
	}
}
