// Package execution defines the per-request tracing envelope the gateway
// stamps onto every response: execution metadata plus the ordered list of
// processing layers that ran.
package execution

import (
	"time"

	"github.com/google/uuid"
)

// HeaderCorrelationID is the inbound header whose value, when present, is
// propagated verbatim as the trace id.
const HeaderCorrelationID = "X-Correlation-Id"

// LayerRouting names the routing stage. It is always the first entry in
// layers_executed.
const LayerRouting = "routing"

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Metadata is created once per request and never mutated afterwards.
type Metadata struct {
	TraceID     string    `json:"trace_id"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	ExecutionID string    `json:"execution_id"`
}

// NewMetadata builds the metadata for one request. traceID may be empty, in
// which case a fresh identifier is generated; the execution id is always fresh.
func NewMetadata(service, traceID string) Metadata {
	if traceID == "" {
		traceID = uuid.NewString()
	}
	return Metadata{
		TraceID:     traceID,
		Timestamp:   time.Now().UTC(),
		Service:     service,
		ExecutionID: uuid.NewString(),
	}
}

// Layer records one processing stage. DurationMS is only present when the
// stage was timed: completed stages carry the elapsed time, a stage that
// returned an error carries an explicit zero, and a stage that failed before
// running (validation) carries nothing.
type Layer struct {
	Layer      string   `json:"layer"`
	Status     Status   `json:"status"`
	DurationMS *float64 `json:"duration_ms,omitempty"`
}

// Completed returns a completed layer entry with the elapsed duration.
func Completed(name string, elapsed time.Duration) Layer {
	ms := float64(elapsed.Microseconds()) / 1000
	return Layer{Layer: name, Status: StatusCompleted, DurationMS: &ms}
}

// Routed returns the routing layer entry that opens every response.
func Routed() Layer {
	return Layer{Layer: LayerRouting, Status: StatusCompleted}
}

// Failed returns a failed layer entry with no duration recorded.
func Failed(name string) Layer {
	return Layer{Layer: name, Status: StatusFailed}
}

// FailedZero returns a failed layer entry with an explicit zero duration,
// used when a handler ran but returned an error.
func FailedZero(name string) Layer {
	zero := 0.0
	return Layer{Layer: name, Status: StatusFailed, DurationMS: &zero}
}
