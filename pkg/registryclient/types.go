package registryclient

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExecutionContext identifies the calling execution. Both values are injected
// into every request as X-Execution-Id and X-Parent-Span-Id; the registry
// rejects /v1 calls that omit them.
type ExecutionContext struct {
	ExecutionID  string
	ParentSpanID string
}

// Headers carrying the execution context.
const (
	HeaderExecutionID  = "X-Execution-Id"
	HeaderParentSpanID = "X-Parent-Span-Id"
)

// Asset is a registry entry: a model, dataset, prompt, or pipeline.
type Asset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	AssetType   string    `json:"asset_type"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RegisterAssetRequest struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	AssetType    string   `json:"asset_type"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

type UpdateAssetRequest struct {
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// SearchAssetsRequest is encoded as query parameters on GET /v1/assets.
type SearchAssetsRequest struct {
	Query     string
	AssetType string
	Tags      []string
	Limit     int
	Offset    int
}

// PaginationMeta mirrors the registry's paginated envelope metadata.
type PaginationMeta struct {
	Total   int64 `json:"total"`
	Offset  int64 `json:"offset"`
	Limit   int64 `json:"limit"`
	HasMore bool  `json:"has_more"`
}

type SearchAssetsResponse struct {
	Assets     []Asset
	Pagination PaginationMeta
}

// DependencyGraph is the resolved dependency tree of one asset.
type DependencyGraph struct {
	RootID string           `json:"root_id"`
	Nodes  []Asset          `json:"nodes"`
	Edges  []DependencyEdge `json:"edges"`
}

type DependencyEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// VersionInfo describes the registry build serving the API.
type VersionInfo struct {
	Version        string `json:"version"`
	APIVersion     string `json:"api_version"`
	BuildTimestamp string `json:"build_timestamp"`
}

// HealthStatus is the registry's /health report.
type HealthStatus struct {
	Status  string                     `json:"status"`
	Version string                     `json:"version,omitempty"`
	Checks  map[string]ComponentHealth `json:"checks,omitempty"`
}

type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// envelope is the registry's uniform response wrapper. Items/pagination are
// only present on paginated list responses.
type envelope struct {
	Data       json.RawMessage `json:"data,omitempty"`
	Items      json.RawMessage `json:"items,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

// APIError is a non-2xx registry response.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("registry: %s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("registry: %s (%d)", e.Message, e.Status)
}
