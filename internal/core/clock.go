package core

import "time"

// Clock supplies monotonic timestamps to running games.
type Clock struct {
	start time.Time
}

// NewClock creates a clock anchored at the current instant.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Now returns seconds elapsed since the clock was created.
// Monotonic: never decreases, unaffected by wall clock changes.
func (c *Clock) Now() float64 {
	return time.Since(c.start).Seconds()
}
