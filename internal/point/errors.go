package point

import "errors"

var (
	ErrCollectionRequired = errors.New("point: collection name is required")
	ErrInvalidVectorSize  = errors.New("point: vector size must be positive")
	ErrInvalidDistance    = errors.New("point: unknown distance metric")
	ErrNoPoints           = errors.New("point: no points given")
	ErrDimensionMismatch  = errors.New("point: vector dimension mismatch")
	ErrEmptyVector        = errors.New("point: query vector is empty")
	ErrPointIDRequired    = errors.New("point: point id is required")
)
