package repository

import (
	"context"

	"vectordb/internal/model"
	"vectordb/internal/point"
)

//go:generate mockery --name QdrantRepository
type QdrantRepository interface {
	CreateCollection(ctx context.Context, opt CreateCollectionOptions) error
	GetCollection(ctx context.Context, collection string) (point.CollectionOutput, error)
	Upsert(ctx context.Context, opt UpsertOptions) (point.UpsertOutput, error)
	Search(ctx context.Context, opt SearchOptions) ([]point.SearchOutput, error)
	SearchBatch(ctx context.Context, opt SearchBatchOptions) ([][]point.SearchOutput, error)
	GetPoint(ctx context.Context, opt GetPointOptions) (model.Point, error)
	Count(ctx context.Context, opt CountOptions) (uint64, error)
	Delete(ctx context.Context, opt DeleteOptions) (point.UpsertOutput, error)
}
