package usecase

import (
	"context"
	"fmt"

	"vectordb/internal/point"
	"vectordb/internal/point/repository"
)

func (uc *implUseCase) Upsert(ctx context.Context, input point.UpsertInput) (point.UpsertOutput, error) {
	if input.Collection == "" {
		return point.UpsertOutput{}, point.ErrCollectionRequired
	}
	if len(input.Points) == 0 {
		return point.UpsertOutput{}, point.ErrNoPoints
	}
	dim := input.Points[0].Dim()
	for _, p := range input.Points {
		if p.Dim() == 0 || p.Dim() != dim {
			return point.UpsertOutput{}, fmt.Errorf("%w: point %s has %d dimensions, want %d", point.ErrDimensionMismatch, p.ID, p.Dim(), dim)
		}
	}

	return uc.repo.Upsert(ctx, repository.UpsertOptions{
		Collection: input.Collection,
		Points:     input.Points,
		Wait:       input.Wait,
	})
}

func (uc *implUseCase) Delete(ctx context.Context, input point.DeleteInput) (point.UpsertOutput, error) {
	if input.Collection == "" {
		return point.UpsertOutput{}, point.ErrCollectionRequired
	}
	if len(input.Points) == 0 {
		return point.UpsertOutput{}, point.ErrNoPoints
	}
	return uc.repo.Delete(ctx, repository.DeleteOptions{
		Collection: input.Collection,
		Points:     input.Points,
		Wait:       input.Wait,
	})
}
