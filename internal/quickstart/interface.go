package quickstart

import "context"

type UseCase interface {
	// Run executes every quickstart stage in order and stops at the first failure.
	// The returned report holds the stages that completed, also on error.
	Run(ctx context.Context, input RunInput) (Report, error)
}
