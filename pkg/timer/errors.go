package timer

import "errors"

var (
	ErrAlreadyStarted = errors.New("timer already started")
	ErrNotStarted     = errors.New("timer not started")
	ErrAlreadyStopped = errors.New("timer already stopped")
	ErrIncomplete     = errors.New("timer has not run to completion")
)
