package entity

import "time"

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusLocked    SeatStatus = "locked"
	SeatStatusBooked    SeatStatus = "booked"
)

// Seat is one unit of bookable inventory. IDs run from 1 to the configured
// seat count and the set is fixed for the life of the process.
type Seat struct {
	ID            int
	Status        SeatStatus
	LockedBy      string    // set only while Status == SeatStatusLocked
	LockExpiresAt time.Time // zero unless Status == SeatStatusLocked
	LockEpoch     uint64    // incremented on every successful lock
}
