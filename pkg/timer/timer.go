// Package timer provides a single-use stopwatch for measuring the latency of
// a bounded block of work with nanosecond precision.
//
// A Timer moves through three states: Unstarted, Started and Completed. Each
// transition happens at most once; calling Start or Stop out of order returns
// an error and leaves the recorded instants untouched. Elapsed values can only
// be read once the timer is Completed.
//
// Most callers should not drive Start and Stop by hand but use Measure, which
// guarantees Stop runs on every exit path of the timed function.
package timer

import "time"

// State is the lifecycle stage of a Timer.
type State int

const (
	StateUnstarted State = iota
	StateStarted
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateStarted:
		return "started"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// phase holds exactly the instants that are valid for one State.
type phase interface {
	state() State
}

type unstarted struct{}

type started struct {
	start int64
}

type completed struct {
	start int64
	end   int64
}

func (unstarted) state() State { return StateUnstarted }
func (started) state() State   { return StateStarted }
func (completed) state() State { return StateCompleted }

// Timer records a start and an end instant read from a monotonic Clock.
// The zero value is an unstarted timer using the default clock.
// A Timer is owned by a single caller and is not safe for concurrent use.
type Timer struct {
	clock Clock
	phase phase
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock sets the clock a Timer reads from.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		if c != nil {
			t.clock = c
		}
	}
}

// New returns an unstarted Timer.
func New(opts ...Option) *Timer {
	t := &Timer{
		clock: defaultClock,
		phase: unstarted{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Timer) now() int64 {
	if t.clock == nil {
		t.clock = defaultClock
	}
	return t.clock.Now()
}

func (t *Timer) current() phase {
	if t.phase == nil {
		return unstarted{}
	}
	return t.phase
}

// State reports where the timer is in its lifecycle.
func (t *Timer) State() State {
	return t.current().state()
}

// Start records the start instant.
func (t *Timer) Start() error {
	if _, ok := t.current().(unstarted); !ok {
		return ErrAlreadyStarted
	}
	t.phase = started{start: t.now()}
	return nil
}

// Stop records the end instant.
func (t *Timer) Stop() error {
	switch p := t.current().(type) {
	case started:
		t.phase = completed{start: p.start, end: t.now()}
		return nil
	case completed:
		return ErrAlreadyStopped
	default:
		return ErrNotStarted
	}
}

// Nanoseconds returns the exact elapsed time between Start and Stop.
func (t *Timer) Nanoseconds() (int64, error) {
	p, ok := t.current().(completed)
	if !ok {
		return 0, ErrIncomplete
	}
	return p.end - p.start, nil
}

// Seconds returns the elapsed time in fractional seconds.
func (t *Timer) Seconds() (float64, error) {
	ns, err := t.Nanoseconds()
	if err != nil {
		return 0, err
	}
	return float64(ns) / 1e9, nil
}

// Duration returns the elapsed time as a time.Duration.
func (t *Timer) Duration() (time.Duration, error) {
	ns, err := t.Nanoseconds()
	if err != nil {
		return 0, err
	}
	return time.Duration(ns), nil
}
