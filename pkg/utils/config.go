package utils

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Reservation ReservationConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type ReservationConfig struct {
	SeatCount int
	LockTTL   time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "seat-reservation")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SEAT_COUNT", 50)
	viper.SetDefault("LOCK_TTL_SECONDS", 60)

	// Missing .env is fine; env vars and defaults still apply.
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Reservation: ReservationConfig{
			SeatCount: viper.GetInt("SEAT_COUNT"),
			LockTTL:   time.Duration(viper.GetInt("LOCK_TTL_SECONDS")) * time.Second,
		},
	}

	// Contract violations are fatal at startup, never at request time.
	if config.Reservation.SeatCount <= 0 {
		return nil, fmt.Errorf("SEAT_COUNT must be positive, got %d", config.Reservation.SeatCount)
	}
	if config.Reservation.LockTTL <= 0 {
		return nil, fmt.Errorf("LOCK_TTL_SECONDS must be positive, got %s", config.Reservation.LockTTL)
	}

	return config, nil
}
