package timer

import "time"

// Clock is a monotonic time source with nanosecond resolution.
// Values are only meaningful relative to each other.
type Clock interface {
	Now() int64
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() int64

// Now calls f.
func (f ClockFunc) Now() int64 {
	return f()
}

// monotonicClock reads Go's monotonic clock as an offset from a fixed origin.
type monotonicClock struct {
	origin time.Time
}

func (c monotonicClock) Now() int64 {
	return int64(time.Since(c.origin))
}

var defaultClock Clock = monotonicClock{origin: time.Now()}

// DefaultClock returns the process-wide monotonic clock used when no other is given.
func DefaultClock() Clock {
	return defaultClock
}
