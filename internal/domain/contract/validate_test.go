package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentics/registry-gateway/internal/domain/contract"
)

func TestValidate_Index(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "mode only", body: `{"mode":"full"}`},
		{name: "all fields", body: `{"mode":"incremental","asset_ids":["a","b"],"asset_type":"model"}`},
		{name: "missing mode", body: `{"asset_ids":["a"]}`, wantErr: "Missing required field: mode"},
		{name: "unknown field", body: `{"mode":"full","bogus":true}`, wantErr: "Unknown field: bogus"},
		{name: "first unknown field in body order", body: `{"mode":"full","zzz":1,"aaa":2}`, wantErr: "Unknown field: zzz"},
		{name: "empty body", body: ``, wantErr: "body must be an object"},
		{name: "array body", body: `[1,2]`, wantErr: "body must be an object"},
		{name: "string body", body: `"hello"`, wantErr: "body must be an object"},
		{name: "null body", body: `null`, wantErr: "body must be an object"},
		{name: "truncated object", body: `{"mode":`, wantErr: "body must be an object"},
		{name: "unclosed object", body: `{"mode":"full"`, wantErr: "body must be an object"},
		{name: "trailing garbage", body: `{"mode":"full"}]]]`, wantErr: "body must be an object"},
		{name: "two objects", body: `{"mode":"full"}{"mode":"full"}`, wantErr: "body must be an object"},
		// Structural validation only: a mode outside the declared enum passes.
		{name: "enum not enforced", body: `{"mode":"nonsense"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := contract.Validate(contract.AgentIndex, []byte(tt.body))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidate_Reputation(t *testing.T) {
	err := contract.Validate(contract.AgentReputation, []byte(`{"agent_id":"a-1","operation":"query"}`))
	assert.NoError(t, err)

	err = contract.Validate(contract.AgentReputation, []byte(`{"agent_id":"a-1"}`))
	require.Error(t, err)
	assert.Equal(t, "Missing required field: operation", err.Error())

	// Required fields are reported before unknown keys, in schema order.
	err = contract.Validate(contract.AgentReputation, []byte(`{"extra":1}`))
	require.Error(t, err)
	assert.Equal(t, "Missing required field: agent_id", err.Error())

	// Nested signal contents are not validated: range and enum stay declarative.
	err = contract.Validate(contract.AgentReputation,
		[]byte(`{"agent_id":"a-1","operation":"record","signal":{"score":42,"category":"vibes"}}`))
	assert.NoError(t, err)
}

func TestValidate_Bootstrap(t *testing.T) {
	err := contract.Validate(contract.AgentBootstrap,
		[]byte(`{"template_id":"tpl-1","agent_name":"scout","config_overrides":{"k":"v"}}`))
	assert.NoError(t, err)

	err = contract.Validate(contract.AgentBootstrap, []byte(`{"template_id":"tpl-1"}`))
	require.Error(t, err)
	assert.Equal(t, "Missing required field: agent_name", err.Error())
}

func TestValidate_UnknownAgent(t *testing.T) {
	err := contract.Validate("nonexistent", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no contract registered")
}

func TestContracts_AllAgentsPresent(t *testing.T) {
	for _, name := range contract.AgentNames() {
		pair, ok := contract.Contracts[name]
		require.True(t, ok, "missing contract for %s", name)
		assert.Equal(t, "object", pair.Request.Type)
		assert.Equal(t, "object", pair.Response.Type)
		assert.NotEmpty(t, pair.Request.Required)
	}
}
