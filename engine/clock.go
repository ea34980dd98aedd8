package engine

import "time"

// Timer is a scheduled one-shot callback that can be stopped before firing
type Timer interface {
	// Stop cancels the timer, reporting whether it was still pending
	Stop() bool
}

// Clock abstracts wall time and timer scheduling
// Systems take a Clock so tests can drive cooldowns deterministically
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeProvider is the real monotonic clock
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on its own goroutine after d
func (p *TimeProvider) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
