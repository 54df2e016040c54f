package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vectordb/internal/bench"
	"vectordb/internal/quickstart"
	"vectordb/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuickstartReport() quickstart.Report {
	return quickstart.Report{
		Collection: "test_collection",
		Stages: []quickstart.StageResult{
			{Name: quickstart.StageCreate, Duration: 1500 * time.Microsecond, Detail: "collection recreated"},
			{Name: quickstart.StageSearch, Duration: 250 * time.Microsecond, Detail: "3 hits", Hits: []quickstart.Hit{
				{ID: "4", Score: 1.362},
				{ID: "1", Score: 1.273},
			}},
		},
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, "0.001500s", seconds(1_500_000*time.Nanosecond))
	assert.Equal(t, "0.000000s", seconds(0))
	assert.Equal(t, "2.000000s", seconds(2*time.Second))
}

func TestFormatHits(t *testing.T) {
	assert.Equal(t, "", formatHits(nil))
	assert.Equal(t, "4:1.362 1:1.273", formatHits(sampleQuickstartReport().Stages[1].Hits))
}

func TestRenderQuickstart_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderQuickstart(&buf, outputJSON, sampleQuickstartReport()))

	var out quickstartJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "test_collection", out.Collection)
	require.Len(t, out.Stages, 2)
	assert.Equal(t, int64(1_500_000), out.Stages[0].Nanoseconds)
	assert.InDelta(t, 0.0015, out.Stages[0].Seconds, 1e-12)
	assert.Len(t, out.Stages[1].Hits, 2)
	assert.InDelta(t, 0.00175, out.TotalSeconds, 1e-12)
}

func TestRenderQuickstart_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderQuickstart(&buf, outputTable, sampleQuickstartReport()))

	out := buf.String()
	assert.Contains(t, out, "0.001500s")
	assert.Contains(t, out, "0.001750s")
	assert.Contains(t, out, "4:1.362")
}

func TestRenderBench_JSON(t *testing.T) {
	report := bench.Report{
		Collection: "bench_collection",
		Points:     100,
		Summaries: []bench.Summary{
			{Stage: bench.StageSearch, Count: 4, Min: time.Millisecond, Max: 4 * time.Millisecond,
				Mean: 2500 * time.Microsecond, P50: 2 * time.Millisecond, P95: 4 * time.Millisecond, Total: 10 * time.Millisecond},
		},
		Elapsed: 19 * time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, renderBench(&buf, outputJSON, report))

	var out benchJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 100, out.Points)
	require.Len(t, out.Summaries, 1)
	assert.Equal(t, bench.StageSearch, out.Summaries[0].Stage)
	assert.InDelta(t, 0.0025, out.Summaries[0].Mean, 1e-12)
	assert.InDelta(t, 0.019, out.ElapsedSeconds, 1e-12)
}

func TestWriteMetricsFile(t *testing.T) {
	m := metrics.New()
	m.ObserveStage("quickstart", "create", 2*time.Millisecond)

	path := filepath.Join(t.TempDir(), "stages.prom")
	require.NoError(t, writeMetricsFile(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vectordb_stage_duration_seconds")
}
