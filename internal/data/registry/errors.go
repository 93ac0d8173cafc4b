package registry

import "errors"

// Every failure a seat operation can produce is an expected, recoverable
// outcome for the caller. None of these are ever wrapped in a panic.
var (
	ErrSeatNotFound        = errors.New("seat not found")
	ErrAlreadyBooked       = errors.New("seat is already booked")
	ErrAlreadyLocked       = errors.New("seat is locked by another request")
	ErrNotLocked           = errors.New("seat is not locked")
	ErrLockExpired         = errors.New("seat lock has expired")
	ErrForbiddenOwner      = errors.New("seat is locked by a different user")
	ErrCannotReleaseBooked = errors.New("cannot release a booked seat")
)
