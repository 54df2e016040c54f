package usecase

import (
	"context"
	"fmt"

	"vectordb/internal/point"
	"vectordb/internal/quickstart"
	pkgQdrant "vectordb/pkg/qdrant"
)

func (uc *implUseCase) Run(ctx context.Context, input quickstart.RunInput) (quickstart.Report, error) {
	report := quickstart.Report{Collection: input.Collection}

	// create
	d, err := uc.timed(ctx, quickstart.StageCreate, func(ctx context.Context) error {
		return uc.points.PrepareCollection(ctx, point.PrepareCollectionInput{
			Collection: input.Collection,
			VectorSize: vectorSize,
			Distance:   input.Distance,
			Recreate:   true,
		})
	})
	if err != nil {
		return report, err
	}
	uc.record(ctx, &report, quickstart.StageResult{
		Name:     quickstart.StageCreate,
		Duration: d,
		Detail:   fmt.Sprintf("collection=%s size=%d distance=%s", input.Collection, vectorSize, input.Distance),
	})

	// info
	var info point.CollectionOutput
	d, err = uc.timed(ctx, quickstart.StageInfo, func(ctx context.Context) error {
		var err error
		info, err = uc.points.GetCollection(ctx, point.GetCollectionInput{Collection: input.Collection})
		return err
	})
	if err != nil {
		return report, err
	}
	uc.record(ctx, &report, quickstart.StageResult{
		Name:     quickstart.StageInfo,
		Duration: d,
		Detail:   fmt.Sprintf("status=%s points=%d", info.Status, info.PointsCount),
	})
	if info.Status != pkgQdrant.StatusGreen {
		return report, fmt.Errorf("%w: collection status %s, want %s", quickstart.ErrUnexpectedStatus, info.Status, pkgQdrant.StatusGreen)
	}
	if info.PointsCount != 0 {
		return report, fmt.Errorf("%w: new collection holds %d points", quickstart.ErrUnexpectedPointCount, info.PointsCount)
	}

	// upsert
	points := samplePoints()
	var upserted point.UpsertOutput
	d, err = uc.timed(ctx, quickstart.StageUpsert, func(ctx context.Context) error {
		var err error
		upserted, err = uc.points.Upsert(ctx, point.UpsertInput{
			Collection: input.Collection,
			Points:     points,
			Wait:       true,
		})
		return err
	})
	if err != nil {
		return report, err
	}
	uc.record(ctx, &report, quickstart.StageResult{
		Name:     quickstart.StageUpsert,
		Duration: d,
		Detail:   fmt.Sprintf("points=%d operation_id=%d status=%s", len(points), upserted.OperationID, upserted.Status),
	})
	if upserted.Status != pkgQdrant.StatusCompleted {
		return report, fmt.Errorf("%w: upsert status %s, want %s", quickstart.ErrUnexpectedStatus, upserted.Status, pkgQdrant.StatusCompleted)
	}

	// search
	if err := uc.search(ctx, &report, quickstart.StageSearch, point.SearchInput{
		Collection: input.Collection,
		Vector:     queryVector,
		Limit:      searchLimit,
	}, expectedSearchHits); err != nil {
		return report, err
	}

	// filtered search
	filter, err := pkgQdrant.NewMatchFilter(filterKey, filterValue)
	if err != nil {
		return report, err
	}
	if err := uc.search(ctx, &report, quickstart.StageFilteredSearch, point.SearchInput{
		Collection: input.Collection,
		Vector:     queryVector,
		Filter:     filter,
		Limit:      searchLimit,
	}, expectedFilteredHits); err != nil {
		return report, err
	}

	uc.l.Infof(ctx, "quickstart.usecase.Run: %d stages completed in %0.6fs", len(report.Stages), report.Total().Seconds())
	return report, nil
}

func (uc *implUseCase) search(ctx context.Context, report *quickstart.Report, stage string, input point.SearchInput, want int) error {
	var results []point.SearchOutput
	d, err := uc.timed(ctx, stage, func(ctx context.Context) error {
		var err error
		results, err = uc.points.Search(ctx, input)
		return err
	})
	if err != nil {
		return err
	}

	hits := toHits(results)
	uc.record(ctx, report, quickstart.StageResult{
		Name:     stage,
		Duration: d,
		Detail:   fmt.Sprintf("limit=%d hits=%d", input.Limit, len(hits)),
		Hits:     hits,
	})
	for i, h := range hits {
		uc.l.Debugf(ctx, "quickstart.usecase.%s: #%d id=%s score=%0.3f", stage, i, h.ID, h.Score)
	}
	if len(hits) != want {
		return fmt.Errorf("%w: %s returned %d hits, want %d", quickstart.ErrUnexpectedResultCount, stage, len(hits), want)
	}
	return nil
}
