package usecase

import (
	"context"
	"fmt"

	"seat-reservation/internal/data/entity"
	"seat-reservation/internal/data/registry"
	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/dto/response"
	"seat-reservation/pkg/utils"

	"go.uber.org/zap"
)

// AnonymousUser is the caller token applied when a request carries none.
const AnonymousUser = "anonymous"

type ReservationService interface {
	// ListSeats returns the status of every seat.
	ListSeats(ctx context.Context) (*response.SeatMapResponse, error)

	// LockSeat places a temporary hold on a seat for the requesting user.
	LockSeat(ctx context.Context, seatID int, req *request.LockSeatRequest) (*response.LockSeatResponse, error)

	// ConfirmSeat finalizes a held seat for the user holding the lock.
	ConfirmSeat(ctx context.Context, seatID int, req *request.ConfirmSeatRequest) (*response.ConfirmSeatResponse, error)

	// ReleaseSeat is the administrative unlock, not tied to a caller.
	ReleaseSeat(ctx context.Context, seatID int) (*response.ReleaseSeatResponse, error)
}

type reservationService struct {
	seats registry.SeatRegistry
	log   *zap.Logger
}

func NewReservationService(seats registry.SeatRegistry, log *zap.Logger) ReservationService {
	return &reservationService{
		seats: seats,
		log:   log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) ListSeats(ctx context.Context) (*response.SeatMapResponse, error) {
	statuses := s.seats.List()

	return &response.SeatMapResponse{
		Total: len(statuses),
		Seats: statuses,
	}, nil
}

func (s *reservationService) LockSeat(ctx context.Context, seatID int, req *request.LockSeatRequest) (*response.LockSeatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID := callerOrAnonymous(req.UserID)

	expiresAt, err := s.seats.Lock(seatID, userID)
	if err != nil {
		s.log.Warn("Seat lock rejected",
			zap.Error(err),
			zap.Int("seat_id", seatID),
			zap.String("user_id", userID),
		)
		return nil, err
	}

	s.log.Info("Seat locked",
		zap.Int("seat_id", seatID),
		zap.String("user_id", userID),
		zap.Time("expires_at", expiresAt),
	)

	return &response.LockSeatResponse{
		SeatID:    seatID,
		UserID:    userID,
		Status:    entity.SeatStatusLocked,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *reservationService) ConfirmSeat(ctx context.Context, seatID int, req *request.ConfirmSeatRequest) (*response.ConfirmSeatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID := callerOrAnonymous(req.UserID)

	if err := s.seats.Confirm(seatID, userID); err != nil {
		s.log.Warn("Seat confirm rejected",
			zap.Error(err),
			zap.Int("seat_id", seatID),
			zap.String("user_id", userID),
		)
		return nil, err
	}

	s.log.Info("Seat booked",
		zap.Int("seat_id", seatID),
		zap.String("user_id", userID),
	)

	return &response.ConfirmSeatResponse{
		SeatID: seatID,
		UserID: userID,
		Status: entity.SeatStatusBooked,
	}, nil
}

func (s *reservationService) ReleaseSeat(ctx context.Context, seatID int) (*response.ReleaseSeatResponse, error) {
	if err := s.seats.Release(seatID); err != nil {
		s.log.Warn("Seat release rejected",
			zap.Error(err),
			zap.Int("seat_id", seatID),
		)
		return nil, err
	}

	s.log.Info("Seat released", zap.Int("seat_id", seatID))

	return &response.ReleaseSeatResponse{
		SeatID: seatID,
		Status: entity.SeatStatusAvailable,
	}, nil
}

func callerOrAnonymous(userID string) string {
	if userID == "" {
		return AnonymousUser
	}
	return userID
}
