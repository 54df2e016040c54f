package qdrant

import (
	"context"
	"fmt"

	"vectordb/internal/point"
	"vectordb/internal/point/repository"
)

func (r *implRepository) CreateCollection(ctx context.Context, opt repository.CreateCollectionOptions) error {
	create := r.client.CreateCollection
	if opt.Recreate {
		create = r.client.RecreateCollection
	}
	if err := create(ctx, opt.Collection, opt.VectorSize, opt.Distance); err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.CreateCollection: Failed to create collection %s: %v", opt.Collection, err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToCreate, err)
	}
	return nil
}

func (r *implRepository) GetCollection(ctx context.Context, collection string) (point.CollectionOutput, error) {
	info, err := r.client.GetCollectionInfo(ctx, collection)
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.GetCollection: Failed to get collection %s: %v", collection, err)
		return point.CollectionOutput{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}
	return point.CollectionOutput{
		Name:        info.Name,
		Status:      info.Status,
		PointsCount: info.PointsCount,
		VectorSize:  info.VectorSize,
		Distance:    info.Distance,
	}, nil
}
