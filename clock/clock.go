// Package clock abstracts time so debounce and animation can be driven deterministically in tests
package clock

import "time"

// Timer is a pending callback that can be cancelled
type Timer interface {
	// Stop cancels the callback; returns false if it already fired or was stopped
	Stop() bool
}

// Clock provides the current time and deferred callbacks
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real is the system clock with monotonic readings
// AfterFunc callbacks run on their own goroutine; callers must only enqueue from them
type Real struct{}

// NewReal creates a system clock
func NewReal() *Real {
	return &Real{}
}

// Now returns the current time with monotonic clock reading
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn after d using time.AfterFunc
func (Real) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
