package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The Generator reads it exactly once per run.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
