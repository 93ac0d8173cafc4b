package utils

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.App.Port != "8080" {
		t.Fatalf("port = %q, want 8080", config.App.Port)
	}
	if config.Reservation.SeatCount != 50 {
		t.Fatalf("seat count = %d, want 50", config.Reservation.SeatCount)
	}
	if config.Reservation.LockTTL != 60*time.Second {
		t.Fatalf("lock TTL = %s, want 60s", config.Reservation.LockTTL)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SEAT_COUNT", "12")
	t.Setenv("LOCK_TTL_SECONDS", "5")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Reservation.SeatCount != 12 {
		t.Fatalf("seat count = %d, want 12", config.Reservation.SeatCount)
	}
	if config.Reservation.LockTTL != 5*time.Second {
		t.Fatalf("lock TTL = %s, want 5s", config.Reservation.LockTTL)
	}
}

func TestLoadConfigRejectsNonPositiveValues(t *testing.T) {
	t.Setenv("SEAT_COUNT", "-3")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for negative seat count")
	}

	t.Setenv("SEAT_COUNT", "10")
	t.Setenv("LOCK_TTL_SECONDS", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for zero TTL")
	}
}
