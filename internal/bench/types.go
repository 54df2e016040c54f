package bench

import "time"

const (
	StageCreate         = "create"
	StageUpsertBatch    = "upsert_batch"
	StageSearch         = "search"
	StageFilteredSearch = "filtered_search"
	StageSearchBatch    = "search_batch"
	StageCount          = "count"
	StageRetrieve       = "retrieve"
	StageDelete         = "delete"
)

// RunInput configures one benchmark run. Points are spread across Groups
// payload groups; every other query is filtered to a single group.
type RunInput struct {
	Collection string
	Dimension  uint64
	Distance   string
	Points     int
	BatchSize  int
	Queries    int
	Limit      uint64
	Groups     int
	Seed       int64
}

// Summary aggregates the latencies of every call of one stage.
type Summary struct {
	Stage string
	Count int
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
	P50   time.Duration
	P95   time.Duration
	Total time.Duration
}

type Report struct {
	Collection string
	Points     int
	Summaries  []Summary
	Elapsed    time.Duration
}
