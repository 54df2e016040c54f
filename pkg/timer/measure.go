package timer

import "context"

// Measure times fn. The returned timer is always stopped before Measure
// returns or before a panic in fn propagates, so its elapsed values are
// readable whether or not fn failed. fn's error is returned unchanged.
func Measure(fn func() error, opts ...Option) (*Timer, error) {
	return MeasureContext(context.Background(), func(context.Context) error {
		return fn()
	}, opts...)
}

// MeasureContext is Measure for functions that take a context.
func MeasureContext(ctx context.Context, fn func(ctx context.Context) error, opts ...Option) (t *Timer, err error) {
	t = New(opts...)
	if err = t.Start(); err != nil {
		return t, err
	}
	defer func() {
		if stopErr := t.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	return t, fn(ctx)
}
