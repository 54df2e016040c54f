package point

import (
	"vectordb/internal/model"

	"github.com/qdrant/go-client/qdrant"
)

type Filter = qdrant.Filter

// PrepareCollectionInput describes the collection to create. With Recreate set
// an existing collection of the same name is dropped first.
type PrepareCollectionInput struct {
	Collection string
	VectorSize uint64
	Distance   string
	Recreate   bool
}

type GetCollectionInput struct {
	Collection string
}

type CollectionOutput struct {
	Name        string
	Status      string
	PointsCount uint64
	VectorSize  uint64
	Distance    string
}

type UpsertInput struct {
	Collection string
	Points     []model.Point
	Wait       bool
}

type UpsertOutput struct {
	OperationID uint64
	Status      string
}

type SearchInput struct {
	Collection string
	Vector     []float32
	Filter     *Filter
	Limit      uint64
}

type SearchOutput = model.ScoredPoint

// SearchBatchInput runs one search per vector in a single request.
type SearchBatchInput struct {
	Collection string
	Vectors    [][]float32
	Filter     *Filter
	Limit      uint64
}

type GetPointInput struct {
	Collection string
	ID         string
}

type CountInput struct {
	Collection string
	Filter     *Filter
}

type DeleteInput struct {
	Collection string
	Points     []string
	Wait       bool
}
