package usecase

import (
	"testing"
	"time"

	"vectordb/internal/bench"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	ms := time.Millisecond
	samples := []time.Duration{5 * ms, 1 * ms, 3 * ms, 2 * ms, 4 * ms, 10 * ms, 6 * ms, 7 * ms, 9 * ms, 8 * ms}

	got := summarize("search", samples)
	assert.Equal(t, bench.Summary{
		Stage: "search",
		Count: 10,
		Min:   1 * ms,
		Max:   10 * ms,
		Mean:  5500 * time.Microsecond,
		P50:   5 * ms,
		P95:   10 * ms,
		Total: 55 * ms,
	}, got)

	// input order is left alone
	assert.Equal(t, 5*ms, samples[0])
}

func TestSummarize_Edges(t *testing.T) {
	assert.Equal(t, bench.Summary{Stage: "count"}, summarize("count", nil))

	one := summarize("count", []time.Duration{time.Second})
	assert.Equal(t, time.Second, one.Min)
	assert.Equal(t, time.Second, one.P50)
	assert.Equal(t, time.Second, one.P95)
	assert.Equal(t, time.Second, one.Mean)
}
