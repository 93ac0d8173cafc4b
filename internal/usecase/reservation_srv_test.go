package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"seat-reservation/internal/data/entity"
	"seat-reservation/internal/data/registry"
	"seat-reservation/internal/dto/request"

	"go.uber.org/zap"
)

func newTestService(t *testing.T, seatCount int) ReservationService {
	t.Helper()

	seats, err := registry.NewSeatRegistry(seatCount, time.Minute, registry.SystemClock(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewSeatRegistry: %v", err)
	}
	t.Cleanup(seats.Stop)

	return NewReservationService(seats, zap.NewNop())
}

func TestListSeats(t *testing.T) {
	svc := newTestService(t, 4)

	resp, err := svc.ListSeats(context.Background())
	if err != nil {
		t.Fatalf("ListSeats: %v", err)
	}
	if resp.Total != 4 || len(resp.Seats) != 4 {
		t.Fatalf("total = %d, seats = %d, want 4", resp.Total, len(resp.Seats))
	}
	for id, status := range resp.Seats {
		if status != entity.SeatStatusAvailable {
			t.Fatalf("seat %d = %s, want available", id, status)
		}
	}
}

func TestLockSeatDefaultsToAnonymous(t *testing.T) {
	svc := newTestService(t, 2)

	resp, err := svc.LockSeat(context.Background(), 1, &request.LockSeatRequest{})
	if err != nil {
		t.Fatalf("LockSeat: %v", err)
	}

	if resp.UserID != AnonymousUser {
		t.Fatalf("user = %q, want %q", resp.UserID, AnonymousUser)
	}
	if resp.Status != entity.SeatStatusLocked {
		t.Fatalf("status = %s, want locked", resp.Status)
	}
	if resp.ExpiresAt.IsZero() {
		t.Fatal("expected expiry instant in response")
	}
}

func TestLockSeatValidation(t *testing.T) {
	svc := newTestService(t, 1)

	tooLong := strings.Repeat("x", 80)
	_, err := svc.LockSeat(context.Background(), 1, &request.LockSeatRequest{UserID: tooLong})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("LockSeat with oversized user id: %v, want validation error", err)
	}
}

func TestLockConfirmReleaseFlow(t *testing.T) {
	svc := newTestService(t, 2)
	ctx := context.Background()

	if _, err := svc.LockSeat(ctx, 1, &request.LockSeatRequest{UserID: "alice"}); err != nil {
		t.Fatalf("LockSeat: %v", err)
	}

	if _, err := svc.ConfirmSeat(ctx, 1, &request.ConfirmSeatRequest{UserID: "bob"}); !errors.Is(err, registry.ErrForbiddenOwner) {
		t.Fatalf("ConfirmSeat by non-owner: %v, want ErrForbiddenOwner", err)
	}

	confirm, err := svc.ConfirmSeat(ctx, 1, &request.ConfirmSeatRequest{UserID: "alice"})
	if err != nil {
		t.Fatalf("ConfirmSeat: %v", err)
	}
	if confirm.Status != entity.SeatStatusBooked {
		t.Fatalf("status = %s, want booked", confirm.Status)
	}

	if _, err := svc.ReleaseSeat(ctx, 1); !errors.Is(err, registry.ErrCannotReleaseBooked) {
		t.Fatalf("ReleaseSeat on booked seat: %v, want ErrCannotReleaseBooked", err)
	}

	release, err := svc.ReleaseSeat(ctx, 2)
	if err != nil {
		t.Fatalf("ReleaseSeat on available seat: %v", err)
	}
	if release.Status != entity.SeatStatusAvailable {
		t.Fatalf("status = %s, want available", release.Status)
	}
}

func TestServicePassesRegistryErrorsThrough(t *testing.T) {
	svc := newTestService(t, 1)
	ctx := context.Background()

	if _, err := svc.LockSeat(ctx, 9, &request.LockSeatRequest{}); !errors.Is(err, registry.ErrSeatNotFound) {
		t.Fatalf("LockSeat unknown seat: %v, want ErrSeatNotFound", err)
	}
	if _, err := svc.ConfirmSeat(ctx, 1, &request.ConfirmSeatRequest{}); !errors.Is(err, registry.ErrNotLocked) {
		t.Fatalf("ConfirmSeat without lock: %v, want ErrNotLocked", err)
	}
}
