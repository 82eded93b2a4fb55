package execution_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentics/registry-gateway/internal/domain/execution"
)

func TestNewMetadata_PropagatesTraceID(t *testing.T) {
	meta := execution.NewMetadata("registry-gateway", "corr-123")

	assert.Equal(t, "corr-123", meta.TraceID)
	assert.Equal(t, "registry-gateway", meta.Service)
	assert.NotEmpty(t, meta.ExecutionID)
	assert.WithinDuration(t, time.Now().UTC(), meta.Timestamp, time.Second)
}

func TestNewMetadata_GeneratesTraceID(t *testing.T) {
	meta := execution.NewMetadata("registry-gateway", "")

	require.NotEmpty(t, meta.TraceID)
	_, err := uuid.Parse(meta.TraceID)
	assert.NoError(t, err, "generated trace id should be a UUID")
}

func TestNewMetadata_FreshExecutionIDs(t *testing.T) {
	a := execution.NewMetadata("registry-gateway", "same-trace")
	b := execution.NewMetadata("registry-gateway", "same-trace")

	assert.NotEqual(t, a.ExecutionID, b.ExecutionID)
}

func TestLayerConstructors(t *testing.T) {
	routed := execution.Routed()
	assert.Equal(t, execution.LayerRouting, routed.Layer)
	assert.Equal(t, execution.StatusCompleted, routed.Status)
	assert.Nil(t, routed.DurationMS)

	done := execution.Completed("index_agent", 1500*time.Microsecond)
	assert.Equal(t, execution.StatusCompleted, done.Status)
	require.NotNil(t, done.DurationMS)
	assert.InDelta(t, 1.5, *done.DurationMS, 0.001)

	failed := execution.Failed("index_agent")
	assert.Equal(t, execution.StatusFailed, failed.Status)
	assert.Nil(t, failed.DurationMS)

	zero := execution.FailedZero("index_agent")
	require.NotNil(t, zero.DurationMS)
	assert.Zero(t, *zero.DurationMS)
}

func TestLayerJSON_OmitsMissingDuration(t *testing.T) {
	data, err := json.Marshal(execution.Failed("bootstrap_agent"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"layer":"bootstrap_agent","status":"failed"}`, string(data))

	data, err = json.Marshal(execution.FailedZero("bootstrap_agent"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"layer":"bootstrap_agent","status":"failed","duration_ms":0}`, string(data))
}
