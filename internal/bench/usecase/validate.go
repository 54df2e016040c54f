package usecase

import (
	"fmt"

	"vectordb/internal/bench"
)

func validate(input bench.RunInput) error {
	switch {
	case input.Collection == "":
		return fmt.Errorf("%w: collection is required", bench.ErrInvalidInput)
	case input.Dimension == 0:
		return fmt.Errorf("%w: dimension must be positive", bench.ErrInvalidInput)
	case input.Points <= 0:
		return fmt.Errorf("%w: points must be positive", bench.ErrInvalidInput)
	case input.BatchSize <= 0:
		return fmt.Errorf("%w: batch size must be positive", bench.ErrInvalidInput)
	case input.Queries <= 0:
		return fmt.Errorf("%w: queries must be positive", bench.ErrInvalidInput)
	case input.Groups <= 0:
		return fmt.Errorf("%w: groups must be positive", bench.ErrInvalidInput)
	}
	return nil
}
