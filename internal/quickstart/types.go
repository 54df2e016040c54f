package quickstart

import "time"

const (
	StageCreate         = "create"
	StageInfo           = "info"
	StageUpsert         = "upsert"
	StageSearch         = "search"
	StageFilteredSearch = "filtered_search"
)

type RunInput struct {
	Collection string
	Distance   string
}

type Hit struct {
	ID    string
	Score float32
}

// StageResult is the outcome of one timed call against the vector database.
type StageResult struct {
	Name     string
	Duration time.Duration
	Detail   string
	Hits     []Hit
}

type Report struct {
	Collection string
	Stages     []StageResult
}

// Total is the sum of all stage durations.
func (r Report) Total() time.Duration {
	var total time.Duration
	for _, s := range r.Stages {
		total += s.Duration
	}
	return total
}
