package usecase

import (
	"vectordb/internal/bench"
	"vectordb/internal/point"
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

func New(l log.Logger, points point.UseCase, recorder metrics.Recorder, clock timer.Clock) bench.UseCase {
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
