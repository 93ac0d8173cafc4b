package registry

import "time"

// Clock is the single time source shared by lock acquisition, lazy expiry
// checks and the expiry scheduler, so a request and a timer callback never
// disagree about "now".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
