package registry

import "time"

// expiryBuffer is added on top of the TTL when arming a timer so the
// scheduled callback never races the authoritative expiry check. The timer
// may fire late, never early.
const expiryBuffer = 50 * time.Millisecond

// expiryScheduler reclaims abandoned locks in the background so a seat does
// not stay unavailable until the next request happens to touch it. It is a
// cleanup mechanism only: the lazy check against the clock remains the
// source of truth, and the reclaim callback re-validates state, epoch and
// expiry under the seat's own mutex before acting.
type expiryScheduler struct {
	clock   Clock
	reclaim func(seatID int, epoch uint64)
}

func newExpiryScheduler(clock Clock, reclaim func(seatID int, epoch uint64)) *expiryScheduler {
	return &expiryScheduler{
		clock:   clock,
		reclaim: reclaim,
	}
}

// arm schedules a reclaim attempt for the given seat no earlier than fireAt.
// The returned timer is the cancellation handle.
func (e *expiryScheduler) arm(seatID int, epoch uint64, fireAt time.Time) *time.Timer {
	delay := fireAt.Sub(e.clock.Now()) + expiryBuffer
	if delay < expiryBuffer {
		delay = expiryBuffer
	}
	return time.AfterFunc(delay, func() {
		e.reclaim(seatID, epoch)
	})
}

// cancel stops a pending timer. Safe to call on a nil handle and on a timer
// that already fired or was already cancelled.
func (e *expiryScheduler) cancel(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}
