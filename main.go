// main.go
package main

import (
	"log"

	"seat-reservation/cmd"
	"seat-reservation/internal/data/registry"
	"seat-reservation/internal/wire"
	"seat-reservation/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Int("seat_count", config.Reservation.SeatCount),
		zap.Duration("lock_ttl", config.Reservation.LockTTL),
	)

	// Build the in-memory seat registry; seats reset on restart.
	seats, err := registry.NewSeatRegistry(
		config.Reservation.SeatCount,
		config.Reservation.LockTTL,
		registry.SystemClock(),
		logger,
	)
	if err != nil {
		logger.Fatal("Failed to build seat registry", zap.Error(err))
	}
	defer seats.Stop()

	// Wire all dependencies
	app := wire.Wiring(seats, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
