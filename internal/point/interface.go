package point

import (
	"context"

	"vectordb/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	PrepareCollection(ctx context.Context, input PrepareCollectionInput) error
	GetCollection(ctx context.Context, input GetCollectionInput) (CollectionOutput, error)
	Upsert(ctx context.Context, input UpsertInput) (UpsertOutput, error)
	Search(ctx context.Context, input SearchInput) ([]SearchOutput, error)
	SearchBatch(ctx context.Context, input SearchBatchInput) ([][]SearchOutput, error)
	GetPoint(ctx context.Context, input GetPointInput) (model.Point, error)
	Count(ctx context.Context, input CountInput) (uint64, error)
	Delete(ctx context.Context, input DeleteInput) (UpsertOutput, error)
}
