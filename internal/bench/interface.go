package bench

import "context"

type UseCase interface {
	Run(ctx context.Context, input RunInput) (Report, error)
}
