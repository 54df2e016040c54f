package usecase

import (
	"context"
	"fmt"
	"time"

	"vectordb/internal/bench"
	"vectordb/internal/model"
	"vectordb/internal/point"
	pkgQdrant "vectordb/pkg/qdrant"
	"vectordb/pkg/timer"
)

const flowName = "bench"

func (uc *implUseCase) Run(ctx context.Context, input bench.RunInput) (bench.Report, error) {
	if err := validate(input); err != nil {
		return bench.Report{}, err
	}

	report := bench.Report{Collection: input.Collection, Points: input.Points}
	samples := make(map[string][]time.Duration)
	order := []string{
		bench.StageCreate, bench.StageUpsertBatch, bench.StageSearch, bench.StageFilteredSearch,
		bench.StageSearchBatch, bench.StageCount, bench.StageRetrieve, bench.StageDelete,
	}

	total, err := timer.MeasureContext(ctx, func(ctx context.Context) error {
		return uc.run(ctx, input, samples)
	}, timer.WithClock(uc.clock))

	for _, stage := range order {
		if len(samples[stage]) > 0 {
			report.Summaries = append(report.Summaries, summarize(stage, samples[stage]))
		}
	}
	if elapsed, durErr := total.Duration(); durErr == nil {
		report.Elapsed = elapsed
	}
	if err != nil {
		return report, err
	}

	uc.l.Infof(ctx, "bench.usecase.Run: %d points, %d queries in %0.6fs", input.Points, input.Queries, report.Elapsed.Seconds())
	return report, nil
}

func (uc *implUseCase) run(ctx context.Context, input bench.RunInput, samples map[string][]time.Duration) error {
	gen := newGenerator(input.Seed, input.Dimension)
	points, err := gen.points(input.Points, input.Groups)
	if err != nil {
		return err
	}
	queries := gen.queries(input.Queries)

	if err := uc.timed(ctx, samples, bench.StageCreate, func(ctx context.Context) error {
		return uc.points.PrepareCollection(ctx, point.PrepareCollectionInput{
			Collection: input.Collection,
			VectorSize: input.Dimension,
			Distance:   input.Distance,
			Recreate:   true,
		})
	}); err != nil {
		return err
	}

	if err := uc.upsert(ctx, input, points, samples); err != nil {
		return err
	}
	if err := uc.search(ctx, input, queries, samples); err != nil {
		return err
	}
	if err := uc.searchBatches(ctx, input, queries, samples); err != nil {
		return err
	}

	var count uint64
	if err := uc.timed(ctx, samples, bench.StageCount, func(ctx context.Context) error {
		var err error
		count, err = uc.points.Count(ctx, point.CountInput{Collection: input.Collection})
		return err
	}); err != nil {
		return err
	}
	if count != uint64(input.Points) {
		return fmt.Errorf("%w: collection holds %d points, want %d", bench.ErrPointCountMismatch, count, input.Points)
	}

	return uc.retrieveAndDelete(ctx, input, points[0], samples)
}

func (uc *implUseCase) upsert(ctx context.Context, input bench.RunInput, points []model.Point, samples map[string][]time.Duration) error {
	for i, batch := range batches(points, input.BatchSize) {
		if err := ctx.Err(); err != nil {
			return err
		}
		var out point.UpsertOutput
		if err := uc.timed(ctx, samples, bench.StageUpsertBatch, func(ctx context.Context) error {
			var err error
			out, err = uc.points.Upsert(ctx, point.UpsertInput{
				Collection: input.Collection,
				Points:     batch,
				Wait:       true,
			})
			return err
		}); err != nil {
			return fmt.Errorf("batch %d: %w", i, err)
		}
		uc.l.Debugf(ctx, "bench.usecase.upsert: batch %d (%d points) status=%s", i, len(batch), out.Status)
	}
	return nil
}

// search runs one request per query. Odd-numbered queries are filtered to a
// single group.
func (uc *implUseCase) search(ctx context.Context, input bench.RunInput, queries [][]float32, samples map[string][]time.Duration) error {
	for q, vector := range queries {
		if err := ctx.Err(); err != nil {
			return err
		}
		in := point.SearchInput{
			Collection: input.Collection,
			Vector:     vector,
			Limit:      input.Limit,
		}
		stage := bench.StageSearch
		if q%2 == 1 {
			filter, err := pkgQdrant.NewMatchFilter(groupKey, filteredGroup(q, input.Groups))
			if err != nil {
				return err
			}
			in.Filter = filter
			stage = bench.StageFilteredSearch
		}
		if err := uc.timed(ctx, samples, stage, func(ctx context.Context) error {
			_, err := uc.points.Search(ctx, in)
			return err
		}); err != nil {
			return fmt.Errorf("query %d: %w", q, err)
		}
	}
	return nil
}

// searchBatches sends the same queries again, BatchSize per request.
func (uc *implUseCase) searchBatches(ctx context.Context, input bench.RunInput, queries [][]float32, samples map[string][]time.Duration) error {
	for i, chunk := range batches(queries, input.BatchSize) {
		if err := ctx.Err(); err != nil {
			return err
		}
		var results [][]point.SearchOutput
		if err := uc.timed(ctx, samples, bench.StageSearchBatch, func(ctx context.Context) error {
			var err error
			results, err = uc.points.SearchBatch(ctx, point.SearchBatchInput{
				Collection: input.Collection,
				Vectors:    chunk,
				Limit:      input.Limit,
			})
			return err
		}); err != nil {
			return fmt.Errorf("search batch %d: %w", i, err)
		}
		uc.l.Debugf(ctx, "bench.usecase.searchBatches: batch %d answered %d of %d queries", i, len(results), len(chunk))
	}
	return nil
}

// retrieveAndDelete reads back one generated point, checks it round-tripped
// and deletes it.
func (uc *implUseCase) retrieveAndDelete(ctx context.Context, input bench.RunInput, want model.Point, samples map[string][]time.Duration) error {
	var got model.Point
	if err := uc.timed(ctx, samples, bench.StageRetrieve, func(ctx context.Context) error {
		var err error
		got, err = uc.points.GetPoint(ctx, point.GetPointInput{Collection: input.Collection, ID: want.ID})
		return err
	}); err != nil {
		return err
	}
	if got.Dim() != want.Dim() || got.Payload[groupKey] != want.Payload[groupKey] {
		return fmt.Errorf("%w: point %s has %d dimensions and group %v, want %d and %v",
			bench.ErrPointMismatch, want.ID, got.Dim(), got.Payload[groupKey], want.Dim(), want.Payload[groupKey])
	}

	var out point.UpsertOutput
	if err := uc.timed(ctx, samples, bench.StageDelete, func(ctx context.Context) error {
		var err error
		out, err = uc.points.Delete(ctx, point.DeleteInput{
			Collection: input.Collection,
			Points:     []string{want.ID},
			Wait:       true,
		})
		return err
	}); err != nil {
		return err
	}
	uc.l.Debugf(ctx, "bench.usecase.retrieveAndDelete: point %s deleted status=%s", want.ID, out.Status)
	return nil
}

// timed measures call and appends its latency to samples[stage], failed calls included.
func (uc *implUseCase) timed(ctx context.Context, samples map[string][]time.Duration, stage string, call func(ctx context.Context) error) error {
	t, err := timer.MeasureContext(ctx, call, timer.WithClock(uc.clock))
	d, durErr := t.Duration()
	if durErr != nil {
		return fmt.Errorf("bench: %s: %w", stage, durErr)
	}
	samples[stage] = append(samples[stage], d)
	uc.metrics.ObserveStage(flowName, stage, d)
	if err != nil {
		uc.l.Errorf(ctx, "bench.usecase.%s: failed after %0.6fs: %v", stage, d.Seconds(), err)
		return fmt.Errorf("bench: %s: %w", stage, err)
	}
	return nil
}
