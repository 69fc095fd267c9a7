package mock

import (
	"sync"
	"time"
)

// Time is a settable clock implementing the application's Clock adapter.
// Scenarios move it forward to cross day boundaries.
type Time struct {
	mu      sync.Mutex
	current time.Time
}

// NewTime creates a clock frozen at the given instant.
func NewTime(start time.Time) *Time {
	return &Time{current: start}
}

// Now returns the clock's current instant.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Set moves the clock to the given instant.
func (t *Time) Set(instant time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = instant
}

// Advance moves the clock forward by d.
func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = t.current.Add(d)
}
