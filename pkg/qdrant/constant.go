package qdrant

import "time"

const (
	// DefaultTimeout is the default timeout for Qdrant operations.
	DefaultTimeout = 30 * time.Second

	// DefaultPingTimeout is the timeout for initial connection ping in NewQdrant.
	DefaultPingTimeout = 5 * time.Second

	// DefaultSearchLimit is the default number of results returned when limit is 0.
	DefaultSearchLimit = 10

	// DefaultPort is Qdrant's gRPC port.
	DefaultPort = 6334

	// Distance metric names accepted by ParseDistance and config.
	DistanceCosine    = "cosine"
	DistanceEuclidean = "euclidean"
	DistanceDot       = "dot"
	DistanceManhattan = "manhattan"

	// Collection and update status names as reported by Qdrant.
	StatusGreen     = "Green"
	StatusCompleted = "Completed"

	apiKeyHeader = "api-key"
)
