package qdrant

import (
	"context"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

// Close closes the Qdrant connection.
func (c *qdrantImpl) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ping checks if Qdrant is reachable.
func (c *qdrantImpl) Ping(ctx context.Context) error {
	_, err := c.collectionsClient.List(ctx, &pb.ListCollectionsRequest{})
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// withTimeout bounds a single call by the client's default timeout unless ctx
// already carries an earlier deadline.
func (c *qdrantImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.defaultTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.defaultTimeout)
}

// CreateCollection creates a new collection in Qdrant.
func (c *qdrantImpl) CreateCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance) error {
	if name == "" {
		return ErrEmptyCollection
	}
	if vectorSize == 0 {
		return ErrInvalidVectorSize
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.collectionsClient.Create(ctx, &pb.CreateCollection{
		CollectionName: name,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: distance,
				},
			},
		},
	})
	if err != nil {
		return WrapError(err, "failed to create collection")
	}
	return nil
}

// RecreateCollection drops the collection if it exists and creates it empty.
func (c *qdrantImpl) RecreateCollection(ctx context.Context, name string, vectorSize uint64, distance pb.Distance) error {
	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		if err := c.DeleteCollection(ctx, name); err != nil {
			return err
		}
	}
	return c.CreateCollection(ctx, name, vectorSize, distance)
}

// DeleteCollection deletes a collection from Qdrant.
func (c *qdrantImpl) DeleteCollection(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.collectionsClient.Delete(ctx, &pb.DeleteCollection{CollectionName: name})
	if err != nil {
		return WrapError(err, "failed to delete collection")
	}
	return nil
}

// CollectionExists checks if a collection exists.
func (c *qdrantImpl) CollectionExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.collectionsClient.CollectionExists(ctx, &pb.CollectionExistsRequest{CollectionName: name})
	if err != nil {
		return false, WrapError(err, "failed to check collection")
	}
	return resp.GetResult().GetExists(), nil
}

// GetCollectionInfo retrieves information about a collection.
func (c *qdrantImpl) GetCollectionInfo(ctx context.Context, name string) (*CollectionInfo, error) {
	if name == "" {
		return nil, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.collectionsClient.Get(ctx, &pb.GetCollectionInfoRequest{CollectionName: name})
	if err != nil {
		return nil, WrapError(err, "failed to get collection info")
	}
	if resp.Result == nil {
		return nil, ErrCollectionNotFound
	}
	return collectionInfoFromResult(name, resp.Result), nil
}

// UpsertPoints inserts or updates multiple points in a collection.
// With wait set, Qdrant acknowledges only once the points are applied.
func (c *qdrantImpl) UpsertPoints(ctx context.Context, collectionName string, points []Point, wait bool) (*UpdateResult, error) {
	if collectionName == "" {
		return nil, ErrEmptyCollection
	}
	if len(points) == 0 {
		return &UpdateResult{Status: StatusCompleted}, nil
	}
	qdrantPoints := make([]*pb.PointStruct, 0, len(points))
	for i, point := range points {
		qp, err := toPointStruct(point)
		if err != nil {
			return nil, fmt.Errorf("point at index %d: %w", i, err)
		}
		qdrantPoints = append(qdrantPoints, qp)
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.pointsClient.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: collectionName,
		Wait:           &wait,
		Points:         qdrantPoints,
	})
	if err != nil {
		return nil, WrapError(err, "failed to upsert points")
	}
	return updateResultFromResponse(resp), nil
}

// DeletePoints deletes points by ID from a collection.
func (c *qdrantImpl) DeletePoints(ctx context.Context, collectionName string, pointIDs []string, wait bool) (*UpdateResult, error) {
	if collectionName == "" {
		return nil, ErrEmptyCollection
	}
	if len(pointIDs) == 0 {
		return nil, ErrInvalidPointID
	}
	ids := make([]*pb.PointId, 0, len(pointIDs))
	for _, id := range pointIDs {
		pid, err := ToPointID(id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, pid)
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.pointsClient.Delete(ctx, &pb.DeletePoints{
		CollectionName: collectionName,
		Wait:           &wait,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Points{
				Points: &pb.PointsIdsList{Ids: ids},
			},
		},
	})
	if err != nil {
		return nil, WrapError(err, "failed to delete points")
	}
	return updateResultFromResponse(resp), nil
}

// GetPoint retrieves a point by ID.
func (c *qdrantImpl) GetPoint(ctx context.Context, collectionName string, pointID string) (*Point, error) {
	if collectionName == "" {
		return nil, ErrEmptyCollection
	}
	pid, err := ToPointID(pointID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.pointsClient.Get(ctx, &pb.GetPoints{
		CollectionName: collectionName,
		Ids:            []*pb.PointId{pid},
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
		WithVectors:    &pb.WithVectorsSelector{SelectorOptions: &pb.WithVectorsSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, WrapError(err, "failed to get point")
	}
	if len(resp.Result) == 0 {
		return nil, ErrPointNotFound
	}
	result := resp.Result[0]
	var vector []float32
	if vectors := result.Vectors; vectors != nil {
		if v := vectors.GetVector(); v != nil {
			vector = v.GetData()
		}
	}
	return &Point{ID: pointID, Vector: vector, Payload: payloadToMap(result.Payload)}, nil
}

// CountPoints returns the exact number of points in a collection matching filter.
// A nil filter counts every point.
func (c *qdrantImpl) CountPoints(ctx context.Context, collectionName string, filter *pb.Filter) (uint64, error) {
	if collectionName == "" {
		return 0, ErrEmptyCollection
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	exact := true
	resp, err := c.pointsClient.Count(ctx, &pb.CountPoints{
		CollectionName: collectionName,
		Filter:         filter,
		Exact:          &exact,
	})
	if err != nil {
		return 0, WrapError(err, "failed to count points")
	}
	if resp.Result == nil {
		return 0, nil
	}
	return resp.Result.Count, nil
}

// SearchWithFilter performs a vector similarity search with payload filter.
func (c *qdrantImpl) SearchWithFilter(ctx context.Context, collectionName string, vector []float32, limit uint64, filter *pb.Filter) ([]SearchResult, error) {
	if collectionName == "" {
		return nil, ErrEmptyCollection
	}
	if len(vector) == 0 {
		return nil, ErrInvalidVector
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.pointsClient.Search(ctx, &pb.SearchPoints{
		CollectionName: collectionName,
		Vector:         vector,
		Limit:          limit,
		Filter:         filter,
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, WrapError(err, "failed to search")
	}
	return searchResultsFromHits(resp.Result), nil
}

// SearchBatch runs one search per query vector in a single request. Results
// are returned in query order. The filter, when set, applies to every query.
func (c *qdrantImpl) SearchBatch(ctx context.Context, collectionName string, vectors [][]float32, limit uint64, filter *pb.Filter) ([][]SearchResult, error) {
	if collectionName == "" {
		return nil, ErrEmptyCollection
	}
	searches, err := batchSearchRequests(collectionName, vectors, limit, filter)
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.pointsClient.SearchBatch(ctx, &pb.SearchBatchPoints{
		CollectionName: collectionName,
		SearchPoints:   searches,
	})
	if err != nil {
		return nil, WrapError(err, "failed to batch search")
	}
	if len(resp.Result) != len(vectors) {
		return nil, fmt.Errorf("%w: %d batch results for %d queries", ErrSearchFailed, len(resp.Result), len(vectors))
	}
	results := make([][]SearchResult, len(resp.Result))
	for i, batch := range resp.Result {
		results[i] = searchResultsFromHits(batch.Result)
	}
	return results, nil
}
