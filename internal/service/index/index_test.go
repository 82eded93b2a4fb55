package index_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentics/registry-gateway/internal/service/index"
)

func TestHandle_CountsAssetIDs(t *testing.T) {
	svc := index.NewService()

	got, err := svc.Handle(context.Background(), []byte(`{"mode":"full","asset_ids":["a","b","c"]}`))
	require.NoError(t, err)

	resp, ok := got.(index.Response)
	require.True(t, ok)
	assert.Equal(t, 3, resp.IndexedCount)
	assert.Zero(t, resp.FailedCount)
	assert.Equal(t, "full", resp.Mode)
	assert.Empty(t, resp.Errors)
	assert.NotNil(t, resp.Errors, "errors must serialize as [] not null")
}

func TestHandle_NoAssetIDs(t *testing.T) {
	svc := index.NewService()

	got, err := svc.Handle(context.Background(), []byte(`{"mode":"rebuild"}`))
	require.NoError(t, err)

	resp := got.(index.Response)
	assert.Zero(t, resp.IndexedCount)
	assert.Equal(t, "rebuild", resp.Mode)
}

func TestHandle_AssetTypeIsIgnored(t *testing.T) {
	svc := index.NewService()

	got, err := svc.Handle(context.Background(),
		[]byte(`{"mode":"incremental","asset_ids":["a"],"asset_type":"dataset"}`))
	require.NoError(t, err)

	resp := got.(index.Response)
	assert.Equal(t, 1, resp.IndexedCount, "asset_type must not filter anything")
}

func TestHandle_MalformedBody(t *testing.T) {
	svc := index.NewService()

	_, err := svc.Handle(context.Background(), []byte(`{"mode":1}`))
	require.Error(t, err)
}

func TestName(t *testing.T) {
	assert.Equal(t, "index", index.NewService().Name())
}
