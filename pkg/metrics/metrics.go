package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type implMetrics struct {
	registry      *prometheus.Registry
	stageDuration *prometheus.HistogramVec
	stageTotal    *prometheus.CounterVec
}

// New creates stage metrics on a private registry.
func New() IMetrics {
	m := &implMetrics{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Latency of each timed call against the vector database",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
			},
			[]string{labelFlow, labelStage},
		),
		stageTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stage_total",
				Help:      "Number of timed calls against the vector database",
			},
			[]string{labelFlow, labelStage},
		),
	}

	m.registry.MustRegister(m.stageDuration)
	m.registry.MustRegister(m.stageTotal)

	return m
}

func (m *implMetrics) ObserveStage(flow, stage string, d time.Duration) {
	m.stageDuration.WithLabelValues(flow, stage).Observe(d.Seconds())
	m.stageTotal.WithLabelValues(flow, stage).Inc()
}

// WriteText writes every collected metric in the Prometheus text format.
func (m *implMetrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveStage(string, string, time.Duration) {}

// NewNop returns a Recorder that drops every observation.
func NewNop() Recorder {
	return nopRecorder{}
}
