package response

import (
	"time"

	"seat-reservation/internal/data/entity"
)

// SeatMapResponse exposes seat statuses only. Lock holders and expiry
// instants stay internal to the registry.
type SeatMapResponse struct {
	Total int                       `json:"total"`
	Seats map[int]entity.SeatStatus `json:"seats"`
}

type LockSeatResponse struct {
	SeatID    int               `json:"seat_id"`
	UserID    string            `json:"user_id"`
	Status    entity.SeatStatus `json:"status"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type ConfirmSeatResponse struct {
	SeatID int               `json:"seat_id"`
	UserID string            `json:"user_id"`
	Status entity.SeatStatus `json:"status"`
}

type ReleaseSeatResponse struct {
	SeatID int               `json:"seat_id"`
	Status entity.SeatStatus `json:"status"`
}
