package qdrant

import (
	"context"
	"errors"
	"testing"

	"vectordb/internal/model"
	"vectordb/internal/point"
	"vectordb/internal/point/repository"
	"vectordb/pkg/log"
	pkgQdrant "vectordb/pkg/qdrant"
	"vectordb/pkg/qdrant/mocks"

	pb "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("recreate", func(t *testing.T) {
		client := mocks.NewIQdrant(t)
		client.On("RecreateCollection", ctx, "c", uint64(4), pb.Distance_Dot).Return(nil).Once()

		r := New(client, log.NewNop())
		require.NoError(t, r.CreateCollection(ctx, repository.CreateCollectionOptions{
			Collection: "c", VectorSize: 4, Distance: pb.Distance_Dot, Recreate: true,
		}))
	})

	t.Run("create error is wrapped", func(t *testing.T) {
		client := mocks.NewIQdrant(t)
		boom := errors.New("already exists")
		client.On("CreateCollection", ctx, "c", uint64(4), pb.Distance_Cosine).Return(boom).Once()

		r := New(client, log.NewNop())
		err := r.CreateCollection(ctx, repository.CreateCollectionOptions{
			Collection: "c", VectorSize: 4, Distance: pb.Distance_Cosine,
		})
		assert.ErrorIs(t, err, repository.ErrFailedToCreate)
		assert.ErrorIs(t, err, boom)
	})
}

func TestGetCollection(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewIQdrant(t)
	client.On("GetCollectionInfo", ctx, "c").Return(&pkgQdrant.CollectionInfo{
		Name: "c", Status: "Green", PointsCount: 0, VectorSize: 4, Distance: "Dot",
	}, nil).Once()

	got, err := New(client, log.NewNop()).GetCollection(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, point.CollectionOutput{Name: "c", Status: "Green", VectorSize: 4, Distance: "Dot"}, got)
}

func TestUpsertAndSearch(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewIQdrant(t)
	r := New(client, log.NewNop())

	payload := map[string]interface{}{"city": []interface{}{"Berlin", "London"}}
	client.On("UpsertPoints", ctx, "c", []pkgQdrant.Point{
		{ID: "2", Vector: []float32{0.19, 0.81, 0.75, 0.11}, Payload: payload},
	}, true).Return(&pkgQdrant.UpdateResult{OperationID: 3, Status: "Completed"}, nil).Once()

	out, err := r.Upsert(ctx, repository.UpsertOptions{
		Collection: "c",
		Points:     []model.Point{{ID: "2", Vector: []float32{0.19, 0.81, 0.75, 0.11}, Payload: payload}},
		Wait:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, point.UpsertOutput{OperationID: 3, Status: "Completed"}, out)

	filter, err := pkgQdrant.NewMatchFilter("city", "London")
	require.NoError(t, err)
	vector := []float32{0.2, 0.1, 0.9, 0.7}
	client.On("SearchWithFilter", ctx, "c", vector, uint64(3), filter).
		Return([]pkgQdrant.SearchResult{{ID: "4", Score: 1.362}, {ID: "2", Score: 0.871}}, nil).Once()

	results, err := r.Search(ctx, repository.SearchOptions{Collection: "c", Vector: vector, Limit: 3, Filter: filter})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "4", results[0].ID)
	assert.Equal(t, "2", results[1].ID)
}

func TestCountAndDelete(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewIQdrant(t)
	r := New(client, log.NewNop())

	client.On("CountPoints", ctx, "c", (*pb.Filter)(nil)).Return(uint64(0), errors.New("down")).Once()
	_, err := r.Count(ctx, repository.CountOptions{Collection: "c"})
	assert.ErrorIs(t, err, repository.ErrFailedToCount)

	client.On("DeletePoints", ctx, "c", []string{"1"}, false).
		Return(&pkgQdrant.UpdateResult{Status: "Acknowledged"}, nil).Once()
	out, err := r.Delete(ctx, repository.DeleteOptions{Collection: "c", Points: []string{"1"}})
	require.NoError(t, err)
	assert.Equal(t, "Acknowledged", out.Status)
}

func TestSearchBatch(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewIQdrant(t)
	r := New(client, log.NewNop())

	vectors := [][]float32{{0.2, 0.1, 0.9, 0.7}, {0.5, 0.5, 0.5, 0.5}}
	client.On("SearchBatch", ctx, "c", vectors, uint64(2), (*pb.Filter)(nil)).
		Return([][]pkgQdrant.SearchResult{
			{{ID: "4", Score: 1.362}, {ID: "1", Score: 1.273}},
			{{ID: "5", Score: 0.9}},
		}, nil).Once()

	got, err := r.SearchBatch(ctx, repository.SearchBatchOptions{Collection: "c", Vectors: vectors, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []point.SearchOutput{{ID: "4", Score: 1.362}, {ID: "1", Score: 1.273}}, got[0])
	assert.Equal(t, "5", got[1][0].ID)

	boom := errors.New("deadline exceeded")
	client.On("SearchBatch", ctx, "down", vectors, uint64(2), (*pb.Filter)(nil)).Return(nil, boom).Once()
	_, err = r.SearchBatch(ctx, repository.SearchBatchOptions{Collection: "down", Vectors: vectors, Limit: 2})
	assert.ErrorIs(t, err, repository.ErrFailedToSearch)
	assert.ErrorIs(t, err, boom)
}

func TestGetPoint(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewIQdrant(t)
	r := New(client, log.NewNop())

	client.On("GetPoint", ctx, "c", "3").Return(&pkgQdrant.Point{
		ID: "3", Vector: []float32{0.36, 0.55, 0.47, 0.94}, Payload: map[string]interface{}{"city": "Moscow"},
	}, nil).Once()

	got, err := r.GetPoint(ctx, repository.GetPointOptions{Collection: "c", ID: "3"})
	require.NoError(t, err)
	assert.Equal(t, model.Point{
		ID: "3", Vector: []float32{0.36, 0.55, 0.47, 0.94}, Payload: map[string]interface{}{"city": "Moscow"},
	}, got)

	client.On("GetPoint", ctx, "c", "9").Return(nil, pkgQdrant.ErrPointNotFound).Once()
	_, err = r.GetPoint(ctx, repository.GetPointOptions{Collection: "c", ID: "9"})
	assert.ErrorIs(t, err, repository.ErrFailedToGetPoint)
	assert.ErrorIs(t, err, pkgQdrant.ErrPointNotFound)
}
