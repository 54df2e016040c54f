package qdrant

import (
	"context"
	"fmt"

	"vectordb/internal/model"
	"vectordb/internal/point"
	"vectordb/internal/point/repository"
	pkgQdrant "vectordb/pkg/qdrant"
)

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]point.SearchOutput, error) {
	pkgResults, err := r.client.SearchWithFilter(ctx, opt.Collection, opt.Vector, opt.Limit, opt.Filter)
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.Search: Failed to search points: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToSearch, err)
	}

	return toSearchOutputs(pkgResults), nil
}

func (r *implRepository) SearchBatch(ctx context.Context, opt repository.SearchBatchOptions) ([][]point.SearchOutput, error) {
	pkgBatches, err := r.client.SearchBatch(ctx, opt.Collection, opt.Vectors, opt.Limit, opt.Filter)
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.SearchBatch: Failed to batch search %d queries: %v", len(opt.Vectors), err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToSearch, err)
	}

	results := make([][]point.SearchOutput, len(pkgBatches))
	for i, batch := range pkgBatches {
		results[i] = toSearchOutputs(batch)
	}
	return results, nil
}

func (r *implRepository) GetPoint(ctx context.Context, opt repository.GetPointOptions) (model.Point, error) {
	p, err := r.client.GetPoint(ctx, opt.Collection, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.GetPoint: Failed to get point %s: %v", opt.ID, err)
		return model.Point{}, fmt.Errorf("%w: %w", repository.ErrFailedToGetPoint, err)
	}
	return model.Point{ID: p.ID, Vector: p.Vector, Payload: p.Payload}, nil
}

func toSearchOutputs(pkgResults []pkgQdrant.SearchResult) []point.SearchOutput {
	results := make([]point.SearchOutput, len(pkgResults))
	for i, pr := range pkgResults {
		results[i] = point.SearchOutput{
			ID:      pr.ID,
			Score:   pr.Score,
			Payload: pr.Payload,
		}
	}
	return results
}

func (r *implRepository) Upsert(ctx context.Context, opt repository.UpsertOptions) (point.UpsertOutput, error) {
	pkgPoints := make([]pkgQdrant.Point, len(opt.Points))
	for i, p := range opt.Points {
		pkgPoints[i] = pkgQdrant.Point{
			ID:      p.ID,
			Vector:  p.Vector,
			Payload: p.Payload,
		}
	}
	res, err := r.client.UpsertPoints(ctx, opt.Collection, pkgPoints, opt.Wait)
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.Upsert: Failed to upsert points: %v", err)
		return point.UpsertOutput{}, fmt.Errorf("%w: %w", repository.ErrFailedToUpsert, err)
	}
	return point.UpsertOutput{OperationID: res.OperationID, Status: res.Status}, nil
}

func (r *implRepository) Count(ctx context.Context, opt repository.CountOptions) (uint64, error) {
	count, err := r.client.CountPoints(ctx, opt.Collection, opt.Filter)
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.Count: Failed to count points: %v", err)
		return 0, fmt.Errorf("%w: %w", repository.ErrFailedToCount, err)
	}
	return count, nil
}

func (r *implRepository) Delete(ctx context.Context, opt repository.DeleteOptions) (point.UpsertOutput, error) {
	res, err := r.client.DeletePoints(ctx, opt.Collection, opt.Points, opt.Wait)
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.Delete: Failed to delete points: %v", err)
		return point.UpsertOutput{}, fmt.Errorf("%w: %w", repository.ErrFailedToDelete, err)
	}
	return point.UpsertOutput{OperationID: res.OperationID, Status: res.Status}, nil
}
