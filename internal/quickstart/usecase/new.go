package usecase

import (
	"vectordb/internal/point"
	"vectordb/internal/quickstart"
	"vectordb/pkg/log"
	"vectordb/pkg/metrics"
	"vectordb/pkg/timer"
)

type implUseCase struct {
	l       log.Logger
	points  point.UseCase
	metrics metrics.Recorder
	clock   timer.Clock
}

// New creates the quickstart usecase. A nil recorder drops stage metrics and a
// nil clock uses the process monotonic clock.
func New(l log.Logger, points point.UseCase, recorder metrics.Recorder, clock timer.Clock) quickstart.UseCase {
	if recorder == nil {
		recorder = metrics.NewNop()
	}
	if clock == nil {
		clock = timer.DefaultClock()
	}
	return &implUseCase{
		l:       l,
		points:  points,
		metrics: recorder,
		clock:   clock,
	}
}
