package usecase

import (
	"math"
	"sort"
	"time"

	"vectordb/internal/bench"
)

func summarize(stage string, samples []time.Duration) bench.Summary {
	s := bench.Summary{Stage: stage, Count: len(samples)}
	if len(samples) == 0 {
		return s
	}

	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, d := range sorted {
		s.Total += d
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Mean = s.Total / time.Duration(len(sorted))
	s.P50 = percentile(sorted, 0.50)
	s.P95 = percentile(sorted, 0.95)
	return s
}

// percentile uses the nearest-rank method on an ascending slice.
func percentile(sorted []time.Duration, p float64) time.Duration {
	rank := int(math.Ceil(p * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
