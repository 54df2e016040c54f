package usecase

import (
	"context"
	"fmt"
	"time"

	"vectordb/internal/point"
	"vectordb/internal/quickstart"
	"vectordb/pkg/timer"
)

const flowName = "quickstart"

// timed runs call inside a timer scope and returns the measured latency. The
// timer is stopped before call's error is returned.
func (uc *implUseCase) timed(ctx context.Context, stage string, call func(ctx context.Context) error) (time.Duration, error) {
	t, err := timer.MeasureContext(ctx, call, timer.WithClock(uc.clock))
	d, durErr := t.Duration()
	if durErr != nil {
		return 0, fmt.Errorf("quickstart: %s: %w", stage, durErr)
	}
	uc.metrics.ObserveStage(flowName, stage, d)
	if err != nil {
		uc.l.Errorf(ctx, "quickstart.usecase.%s: failed after %0.6fs: %v", stage, d.Seconds(), err)
		return d, fmt.Errorf("quickstart: %s: %w", stage, err)
	}
	return d, nil
}

func (uc *implUseCase) record(ctx context.Context, report *quickstart.Report, result quickstart.StageResult) {
	report.Stages = append(report.Stages, result)
	uc.l.Infof(ctx, "[%0.6fs] %s: %s", result.Duration.Seconds(), result.Name, result.Detail)
}

func toHits(results []point.SearchOutput) []quickstart.Hit {
	hits := make([]quickstart.Hit, len(results))
	for i, r := range results {
		hits[i] = quickstart.Hit{ID: r.ID, Score: r.Score}
	}
	return hits
}
