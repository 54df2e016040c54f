package qdrant

import (
	"time"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
)

// Config holds Qdrant configuration
type Config struct {
	Host    string
	Port    int
	UseTLS  bool
	APIKey  string
	Timeout time.Duration
}

// Point represents a vector point in Qdrant.
// ID is either an unsigned integer in decimal form or a UUID.
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]interface{}
}

// SearchResult represents a search result from Qdrant
type SearchResult struct {
	ID      string
	Score   float32
	Payload map[string]interface{}
}

// CollectionInfo represents collection metadata
type CollectionInfo struct {
	Name        string
	VectorSize  uint64
	Distance    string
	PointsCount uint64
	Status      string
}

// UpdateResult is the acknowledgment of a write operation.
type UpdateResult struct {
	OperationID uint64
	Status      string
}

type qdrantImpl struct {
	conn              *grpc.ClientConn
	pointsClient      pb.PointsClient
	collectionsClient pb.CollectionsClient
	defaultTimeout    time.Duration
}
