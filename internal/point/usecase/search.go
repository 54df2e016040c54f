package usecase

import (
	"context"
	"fmt"

	"vectordb/internal/model"
	"vectordb/internal/point"
	"vectordb/internal/point/repository"
)

func (uc *implUseCase) Search(ctx context.Context, input point.SearchInput) ([]point.SearchOutput, error) {
	if input.Collection == "" {
		return nil, point.ErrCollectionRequired
	}
	if len(input.Vector) == 0 {
		return nil, point.ErrEmptyVector
	}
	return uc.repo.Search(ctx, repository.SearchOptions{
		Collection: input.Collection,
		Vector:     input.Vector,
		Filter:     input.Filter,
		Limit:      input.Limit,
	})
}

func (uc *implUseCase) SearchBatch(ctx context.Context, input point.SearchBatchInput) ([][]point.SearchOutput, error) {
	if input.Collection == "" {
		return nil, point.ErrCollectionRequired
	}
	if len(input.Vectors) == 0 {
		return nil, point.ErrEmptyVector
	}
	for i, v := range input.Vectors {
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: query %d", point.ErrEmptyVector, i)
		}
	}
	return uc.repo.SearchBatch(ctx, repository.SearchBatchOptions{
		Collection: input.Collection,
		Vectors:    input.Vectors,
		Filter:     input.Filter,
		Limit:      input.Limit,
	})
}

func (uc *implUseCase) GetPoint(ctx context.Context, input point.GetPointInput) (model.Point, error) {
	if input.Collection == "" {
		return model.Point{}, point.ErrCollectionRequired
	}
	if input.ID == "" {
		return model.Point{}, point.ErrPointIDRequired
	}
	return uc.repo.GetPoint(ctx, repository.GetPointOptions{
		Collection: input.Collection,
		ID:         input.ID,
	})
}

func (uc *implUseCase) Count(ctx context.Context, input point.CountInput) (uint64, error) {
	if input.Collection == "" {
		return 0, point.ErrCollectionRequired
	}
	return uc.repo.Count(ctx, repository.CountOptions{
		Collection: input.Collection,
		Filter:     input.Filter,
	})
}
