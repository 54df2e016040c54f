package qdrant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vectordb/config"
	"vectordb/pkg/qdrant"
)

var (
	instance qdrant.IQdrant
	mu       sync.RWMutex
)

// Connect initializes and connects to Qdrant using singleton pattern.
func Connect(ctx context.Context, cfg config.QdrantConfig) (qdrant.IQdrant, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client, err := qdrant.NewQdrant(qdrant.Config{
		Host:    cfg.Host,
		Port:    cfg.Port,
		APIKey:  cfg.APIKey,
		UseTLS:  cfg.UseTLS,
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Qdrant client: %w", err)
	}

	instance = client
	return instance, nil
}

// HealthCheck checks if Qdrant connection is healthy
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("qdrant client not initialized")
	}

	return instance.Ping(ctx)
}

// Disconnect closes the Qdrant connection
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return err
		}
		instance = nil
	}
	return nil
}
