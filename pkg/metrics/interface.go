package metrics

import (
	"io"
	"time"
)

// Recorder receives the latency of one timed stage of a flow.
type Recorder interface {
	ObserveStage(flow, stage string, d time.Duration)
}

// IMetrics is a Recorder whose observations can be exported.
type IMetrics interface {
	Recorder
	WriteText(w io.Writer) error
}
