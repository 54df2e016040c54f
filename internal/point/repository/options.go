package repository

import (
	"vectordb/internal/model"

	"github.com/qdrant/go-client/qdrant"
)

type CreateCollectionOptions struct {
	Collection string
	VectorSize uint64
	Distance   qdrant.Distance
	Recreate   bool
}

type UpsertOptions struct {
	Collection string
	Points     []model.Point
	Wait       bool
}

type SearchOptions struct {
	Collection string
	Vector     []float32
	Filter     *qdrant.Filter
	Limit      uint64
}

type SearchBatchOptions struct {
	Collection string
	Vectors    [][]float32
	Filter     *qdrant.Filter
	Limit      uint64
}

type GetPointOptions struct {
	Collection string
	ID         string
}

type CountOptions struct {
	Collection string
	Filter     *qdrant.Filter
}

type DeleteOptions struct {
	Collection string
	Points     []string
	Wait       bool
}
