package timefmt

import "time"

// Clock is the source of the current instant
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Snapshots and tests use it.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
