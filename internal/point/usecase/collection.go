package usecase

import (
	"context"
	"fmt"

	"vectordb/internal/point"
	"vectordb/internal/point/repository"
	pkgQdrant "vectordb/pkg/qdrant"
)

func (uc *implUseCase) PrepareCollection(ctx context.Context, input point.PrepareCollectionInput) error {
	if input.Collection == "" {
		return point.ErrCollectionRequired
	}
	if input.VectorSize == 0 {
		return point.ErrInvalidVectorSize
	}
	distance, err := pkgQdrant.ParseDistance(input.Distance)
	if err != nil {
		return fmt.Errorf("%w: %q", point.ErrInvalidDistance, input.Distance)
	}

	return uc.repo.CreateCollection(ctx, repository.CreateCollectionOptions{
		Collection: input.Collection,
		VectorSize: input.VectorSize,
		Distance:   distance,
		Recreate:   input.Recreate,
	})
}

func (uc *implUseCase) GetCollection(ctx context.Context, input point.GetCollectionInput) (point.CollectionOutput, error) {
	if input.Collection == "" {
		return point.CollectionOutput{}, point.ErrCollectionRequired
	}
	return uc.repo.GetCollection(ctx, input.Collection)
}
