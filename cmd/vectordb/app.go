package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	configQdrant "vectordb/config/qdrant"
	"vectordb/internal/point"
	pointRepo "vectordb/internal/point/repository/qdrant"
	pointUsecase "vectordb/internal/point/usecase"
	"vectordb/pkg/log"
	"vectordb/pkg/metrics"

	"github.com/google/uuid"
)

// app holds the dependencies shared by every flow.
type app struct {
	points  point.UseCase
	metrics metrics.IMetrics
}

// runContext returns a context cancelled on SIGINT/SIGTERM and tagged with a run id.
func runContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return log.SetTraceID(ctx, uuid.NewString()), stop
}

func newApp(ctx context.Context) (*app, func(), error) {
	client, err := configQdrant.Connect(ctx, cfg.Qdrant)
	if err != nil {
		return nil, nil, err
	}
	logger.Infof(ctx, "Qdrant connected successfully to %s:%d", cfg.Qdrant.Host, cfg.Qdrant.Port)

	cleanup := func() {
		if err := configQdrant.Disconnect(); err != nil {
			logger.Warnf(ctx, "Failed to close Qdrant connection: %v", err)
		}
	}

	if err := configQdrant.HealthCheck(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("qdrant health check: %w", err)
	}

	repo := pointRepo.New(client, logger)
	return &app{
		points:  pointUsecase.New(repo, logger),
		metrics: metrics.New(),
	}, cleanup, nil
}

// flushMetrics writes the collected stage metrics when enabled in config.
func (a *app) flushMetrics(ctx context.Context) {
	if !cfg.Metrics.Enabled {
		return
	}
	if err := writeMetricsFile(cfg.Metrics.OutputFile, a.metrics); err != nil {
		logger.Errorf(ctx, "Failed to write metrics: %v", err)
		return
	}
	logger.Infof(ctx, "Stage metrics written to %s", cfg.Metrics.OutputFile)
}

func writeMetricsFile(path string, m metrics.IMetrics) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := m.WriteText(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
