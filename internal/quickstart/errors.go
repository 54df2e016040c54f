package quickstart

import "errors"

var (
	ErrUnexpectedStatus      = errors.New("quickstart: unexpected status")
	ErrUnexpectedPointCount  = errors.New("quickstart: unexpected point count")
	ErrUnexpectedResultCount = errors.New("quickstart: unexpected result count")
)
