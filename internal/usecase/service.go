package usecase

import (
	"seat-reservation/internal/data/registry"

	"go.uber.org/zap"
)

type Service struct {
	Reservation ReservationService
}

func NewService(seats registry.SeatRegistry, log *zap.Logger) *Service {
	return &Service{
		Reservation: NewReservationService(seats, log),
	}
}
