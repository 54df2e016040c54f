package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vectordb/internal/point"
	"vectordb/internal/point/mocks"
	"vectordb/internal/quickstart"
	"vectordb/pkg/log"
	"vectordb/pkg/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tickClock advances by one millisecond on every reading.
func tickClock() timer.Clock {
	var now int64
	return timer.ClockFunc(func() int64 {
		now += int64(time.Millisecond)
		return now
	})
}

type stageRecorder struct {
	stages []string
}

func (r *stageRecorder) ObserveStage(flow, stage string, d time.Duration) {
	r.stages = append(r.stages, flow+"/"+stage)
}

func isPlainSearch(in point.SearchInput) bool {
	return in.Filter == nil && in.Limit == 3
}

func isCityFilter(in point.SearchInput) bool {
	if in.Filter == nil || len(in.Filter.Must) != 1 {
		return false
	}
	field := in.Filter.Must[0].GetField()
	return field.GetKey() == "city" && field.GetMatch().GetKeyword() == "London" && in.Limit == 3
}

func expectHappyPath(ctx context.Context, points *mocks.UseCase) {
	points.On("PrepareCollection", ctx, point.PrepareCollectionInput{
		Collection: "test_collection",
		VectorSize: 4,
		Distance:   "dot",
		Recreate:   true,
	}).Return(nil).Once()
	points.On("GetCollection", ctx, point.GetCollectionInput{Collection: "test_collection"}).
		Return(point.CollectionOutput{Name: "test_collection", Status: "Green"}, nil).Once()
	points.On("Upsert", ctx, point.UpsertInput{Collection: "test_collection", Points: samplePoints(), Wait: true}).
		Return(point.UpsertOutput{OperationID: 0, Status: "Completed"}, nil).Once()
	points.On("Search", ctx, mock.MatchedBy(isPlainSearch)).
		Return([]point.SearchOutput{{ID: "4", Score: 1.362}, {ID: "1", Score: 1.273}, {ID: "3", Score: 1.208}}, nil).Once()
	points.On("Search", ctx, mock.MatchedBy(isCityFilter)).
		Return([]point.SearchOutput{{ID: "4", Score: 1.362}, {ID: "2", Score: 0.871}}, nil).Once()
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	points := mocks.NewUseCase(t)
	expectHappyPath(ctx, points)
	recorder := &stageRecorder{}

	uc := New(log.NewNop(), points, recorder, tickClock())
	report, err := uc.Run(ctx, quickstart.RunInput{Collection: "test_collection", Distance: "dot"})
	require.NoError(t, err)

	names := make([]string, 0, len(report.Stages))
	for _, s := range report.Stages {
		names = append(names, s.Name)
		assert.Equal(t, time.Millisecond, s.Duration)
	}
	assert.Equal(t, []string{
		quickstart.StageCreate,
		quickstart.StageInfo,
		quickstart.StageUpsert,
		quickstart.StageSearch,
		quickstart.StageFilteredSearch,
	}, names)
	assert.Equal(t, 5*time.Millisecond, report.Total())
	assert.Len(t, recorder.stages, 5)
	assert.Equal(t, "quickstart/create", recorder.stages[0])

	filtered := report.Stages[4]
	assert.Equal(t, []quickstart.Hit{{ID: "4", Score: 1.362}, {ID: "2", Score: 0.871}}, filtered.Hits)
}

func TestRun_Failures(t *testing.T) {
	ctx := context.Background()
	input := quickstart.RunInput{Collection: "test_collection", Distance: "dot"}

	t.Run("create fails", func(t *testing.T) {
		points := mocks.NewUseCase(t)
		boom := errors.New("unavailable")
		points.On("PrepareCollection", ctx, mock.Anything).Return(boom).Once()
		recorder := &stageRecorder{}

		report, err := New(log.NewNop(), points, recorder, tickClock()).Run(ctx, input)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, report.Stages)
		// the failed call is still timed
		assert.Equal(t, []string{"quickstart/create"}, recorder.stages)
	})

	t.Run("collection not green", func(t *testing.T) {
		points := mocks.NewUseCase(t)
		points.On("PrepareCollection", ctx, mock.Anything).Return(nil).Once()
		points.On("GetCollection", ctx, mock.Anything).
			Return(point.CollectionOutput{Status: "Yellow"}, nil).Once()

		report, err := New(log.NewNop(), points, nil, tickClock()).Run(ctx, input)
		assert.ErrorIs(t, err, quickstart.ErrUnexpectedStatus)
		assert.Len(t, report.Stages, 2)
	})

	t.Run("collection not empty", func(t *testing.T) {
		points := mocks.NewUseCase(t)
		points.On("PrepareCollection", ctx, mock.Anything).Return(nil).Once()
		points.On("GetCollection", ctx, mock.Anything).
			Return(point.CollectionOutput{Status: "Green", PointsCount: 6}, nil).Once()

		_, err := New(log.NewNop(), points, nil, tickClock()).Run(ctx, input)
		assert.ErrorIs(t, err, quickstart.ErrUnexpectedPointCount)
	})

	t.Run("upsert not completed", func(t *testing.T) {
		points := mocks.NewUseCase(t)
		points.On("PrepareCollection", ctx, mock.Anything).Return(nil).Once()
		points.On("GetCollection", ctx, mock.Anything).
			Return(point.CollectionOutput{Status: "Green"}, nil).Once()
		points.On("Upsert", ctx, mock.Anything).
			Return(point.UpsertOutput{Status: "Acknowledged"}, nil).Once()

		_, err := New(log.NewNop(), points, nil, tickClock()).Run(ctx, input)
		assert.ErrorIs(t, err, quickstart.ErrUnexpectedStatus)
	})

	t.Run("filtered search count", func(t *testing.T) {
		points := mocks.NewUseCase(t)
		points.On("PrepareCollection", ctx, mock.Anything).Return(nil).Once()
		points.On("GetCollection", ctx, mock.Anything).
			Return(point.CollectionOutput{Status: "Green"}, nil).Once()
		points.On("Upsert", ctx, mock.Anything).
			Return(point.UpsertOutput{Status: "Completed"}, nil).Once()
		points.On("Search", ctx, mock.MatchedBy(isPlainSearch)).
			Return([]point.SearchOutput{{ID: "4"}, {ID: "1"}, {ID: "3"}}, nil).Once()
		points.On("Search", ctx, mock.MatchedBy(isCityFilter)).
			Return([]point.SearchOutput{{ID: "4"}}, nil).Once()

		report, err := New(log.NewNop(), points, nil, tickClock()).Run(ctx, input)
		assert.ErrorIs(t, err, quickstart.ErrUnexpectedResultCount)
		assert.Len(t, report.Stages, 5)
	})
}
