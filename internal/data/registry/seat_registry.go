package registry

import (
	"fmt"
	"sync"
	"time"

	"seat-reservation/internal/data/entity"

	"go.uber.org/zap"
)

// SeatRegistry is the single source of truth for seat state. Every
// transition is validated against the seat's current status and applied
// atomically under that seat's own mutex, so concurrent requests for the
// same seat serialize while different seats proceed fully in parallel.
type SeatRegistry interface {
	// List reports the current status of every seat. It never exposes lock
	// internals and has no side effects; a locked seat whose lock already
	// expired is reported as available.
	List() map[int]entity.SeatStatus

	// Lock acquires a temporary exclusive hold on the seat for userID and
	// returns the instant the hold expires.
	Lock(seatID int, userID string) (time.Time, error)

	// Confirm finalizes the booking for the caller currently holding the
	// seat's lock. A booked seat never changes state again.
	Confirm(seatID int, userID string) error

	// Release is the administrative unlock. It is idempotent on available
	// seats and refuses to touch booked seats.
	Release(seatID int) error

	// Stop cancels all pending expiry timers.
	Stop()
}

// seatRecord holds one seat's state. The mutex guards every field,
// including the timer handle, so arming, cancelling and firing a seat's
// expiry timer serialize with its state transitions.
type seatRecord struct {
	mu        sync.Mutex
	status    entity.SeatStatus
	lockedBy  string
	expiresAt time.Time
	epoch     uint64
	timer     *time.Timer
}

type seatRegistry struct {
	seats     map[int]*seatRecord
	ttl       time.Duration
	clock     Clock
	scheduler *expiryScheduler
	log       *zap.Logger
}

// NewSeatRegistry creates seatCount seats numbered 1..seatCount, all
// available. The seat set and TTL are fixed for the life of the process.
func NewSeatRegistry(seatCount int, ttl time.Duration, clock Clock, log *zap.Logger) (SeatRegistry, error) {
	if seatCount <= 0 {
		return nil, fmt.Errorf("seat count must be positive, got %d", seatCount)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("lock TTL must be positive, got %s", ttl)
	}

	r := &seatRegistry{
		seats: make(map[int]*seatRecord, seatCount),
		ttl:   ttl,
		clock: clock,
		log:   log.With(zap.String("registry", "seat")),
	}
	r.scheduler = newExpiryScheduler(clock, r.reclaimExpired)

	for id := 1; id <= seatCount; id++ {
		r.seats[id] = &seatRecord{status: entity.SeatStatusAvailable}
	}

	return r, nil
}

func (r *seatRegistry) List() map[int]entity.SeatStatus {
	now := r.clock.Now()

	statuses := make(map[int]entity.SeatStatus, len(r.seats))
	for id, seat := range r.seats {
		seat.mu.Lock()
		status := seat.status
		if status == entity.SeatStatusLocked && !seat.expiresAt.After(now) {
			// Expired but not yet reclaimed. Report what the next lock
			// attempt would find, without mutating anything here.
			status = entity.SeatStatusAvailable
		}
		seat.mu.Unlock()
		statuses[id] = status
	}

	return statuses
}

func (r *seatRegistry) Lock(seatID int, userID string) (time.Time, error) {
	seat, ok := r.seats[seatID]
	if !ok {
		return time.Time{}, ErrSeatNotFound
	}

	seat.mu.Lock()
	defer seat.mu.Unlock()

	now := r.clock.Now()
	r.expireLocked(seatID, seat, now)

	switch seat.status {
	case entity.SeatStatusBooked:
		return time.Time{}, ErrAlreadyBooked
	case entity.SeatStatusLocked:
		return time.Time{}, ErrAlreadyLocked
	}

	seat.status = entity.SeatStatusLocked
	seat.lockedBy = userID
	seat.expiresAt = now.Add(r.ttl)
	seat.epoch++

	// Replace any stale timer handle before arming for the new epoch.
	r.scheduler.cancel(seat.timer)
	seat.timer = r.scheduler.arm(seatID, seat.epoch, seat.expiresAt)

	return seat.expiresAt, nil
}

func (r *seatRegistry) Confirm(seatID int, userID string) error {
	seat, ok := r.seats[seatID]
	if !ok {
		return ErrSeatNotFound
	}

	seat.mu.Lock()
	defer seat.mu.Unlock()

	if seat.status != entity.SeatStatusLocked {
		return ErrNotLocked
	}

	now := r.clock.Now()
	if r.expireLocked(seatID, seat, now) {
		// Distinct from ErrNotLocked: the caller held a lock but ran out
		// the window and must lock again.
		return ErrLockExpired
	}

	if seat.lockedBy != userID {
		return ErrForbiddenOwner
	}

	r.scheduler.cancel(seat.timer)
	seat.status = entity.SeatStatusBooked
	seat.lockedBy = ""
	seat.expiresAt = time.Time{}
	seat.timer = nil

	return nil
}

func (r *seatRegistry) Release(seatID int) error {
	seat, ok := r.seats[seatID]
	if !ok {
		return ErrSeatNotFound
	}

	seat.mu.Lock()
	defer seat.mu.Unlock()

	switch seat.status {
	case entity.SeatStatusBooked:
		return ErrCannotReleaseBooked
	case entity.SeatStatusAvailable:
		return nil
	}

	r.clearLockLocked(seat)
	return nil
}

func (r *seatRegistry) Stop() {
	for _, seat := range r.seats {
		seat.mu.Lock()
		r.scheduler.cancel(seat.timer)
		seat.timer = nil
		seat.mu.Unlock()
	}
}

// expireLocked applies lazy expiry: if the seat holds a lock whose window
// has passed, the seat drops back to available. This check runs at the start
// of every operation that reads a locked seat, so correctness never depends
// on the scheduler firing promptly. Caller must hold seat.mu.
func (r *seatRegistry) expireLocked(seatID int, seat *seatRecord, now time.Time) bool {
	if seat.status != entity.SeatStatusLocked || seat.expiresAt.After(now) {
		return false
	}

	holder := seat.lockedBy
	r.clearLockLocked(seat)

	r.log.Debug("Seat lock lazily expired",
		zap.Int("seat_id", seatID),
		zap.String("was_locked_by", holder),
	)
	return true
}

// reclaimExpired is the scheduled-expiry callback. It re-validates under the
// seat mutex: the seat must still be locked, the lock must still belong to
// the epoch this timer was armed for, and the window must actually have
// passed. Without the epoch check a timer armed for an earlier lock could
// fire after a re-lock and evict the new, valid holder.
func (r *seatRegistry) reclaimExpired(seatID int, epoch uint64) {
	seat, ok := r.seats[seatID]
	if !ok {
		return
	}

	seat.mu.Lock()
	defer seat.mu.Unlock()

	if seat.status != entity.SeatStatusLocked || seat.epoch != epoch {
		return
	}

	now := r.clock.Now()
	if seat.expiresAt.After(now) {
		return
	}

	holder := seat.lockedBy
	r.clearLockLocked(seat)

	r.log.Info("Seat lock reclaimed by scheduler",
		zap.Int("seat_id", seatID),
		zap.String("was_locked_by", holder),
	)
}

// clearLockLocked resets a seat to available and drops every lock field.
// Caller must hold seat.mu.
func (r *seatRegistry) clearLockLocked(seat *seatRecord) {
	r.scheduler.cancel(seat.timer)
	seat.status = entity.SeatStatusAvailable
	seat.lockedBy = ""
	seat.expiresAt = time.Time{}
	seat.timer = nil
}
