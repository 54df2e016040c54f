package usecase

import (
	"fmt"
	"math/rand"

	"vectordb/internal/model"

	"github.com/google/uuid"
)

const groupKey = "group"

func groupName(i, groups int) string {
	return fmt.Sprintf("g%d", i%groups)
}

// filteredGroup spreads the odd-numbered (filtered) queries across every group.
func filteredGroup(q, groups int) string {
	return groupName(q/2, groups)
}

// generator produces reproducible points and queries from a seed.
type generator struct {
	rng *rand.Rand
	dim uint64
}

func newGenerator(seed int64, dim uint64) *generator {
	return &generator{rng: rand.New(rand.NewSource(seed)), dim: dim}
}

func (g *generator) vector() []float32 {
	v := make([]float32, g.dim)
	for i := range v {
		v[i] = g.rng.Float32()
	}
	return v
}

func (g *generator) points(n, groups int) ([]model.Point, error) {
	points := make([]model.Point, n)
	for i := range points {
		id, err := uuid.NewRandomFromReader(g.rng)
		if err != nil {
			return nil, fmt.Errorf("generate point id: %w", err)
		}
		points[i] = model.Point{
			ID:     id.String(),
			Vector: g.vector(),
			Payload: map[string]interface{}{
				groupKey: groupName(i, groups),
				"seq":    int64(i),
			},
		}
	}
	return points, nil
}

// batches splits items into consecutive slices of at most size elements.
func batches[T any](items []T, size int) [][]T {
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}

// queries draws n query vectors.
func (g *generator) queries(n int) [][]float32 {
	out := make([][]float32, n)
	for i := range out {
		out[i] = g.vector()
	}
	return out
}
