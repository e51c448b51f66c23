package stats

import "time"

// Clock supplies the current time and its calendar rules (location).
// Week and day boundaries are computed in the clock's location, so a
// fixed clock can stand in during tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in local time.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.T
}
