// Package registryclient is the Go client for the LLM Registry HTTP API.
// Every call stamps the caller's execution context onto the request so the
// registry can attach its spans to the right execution graph.
package registryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultCacheTTL = time.Hour

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	cache      *assetCache
	cacheTTL   time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets a bearer token forwarded on every request. The client never
// validates it; authorization is the registry's concern.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithCacheTTL changes how long GetAsset results are served from memory.
// A zero TTL disables the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cacheTTL = ttl }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		cache:      newAssetCache(),
		cacheTTL:   defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterAsset creates a new asset.
func (c *Client) RegisterAsset(ctx context.Context, ec ExecutionContext, req RegisterAssetRequest) (Asset, error) {
	var out struct {
		Asset Asset `json:"asset"`
	}
	if err := c.do(ctx, ec, http.MethodPost, "/v1/assets", nil, req, &out); err != nil {
		return Asset{}, fmt.Errorf("register asset: %w", err)
	}
	return out.Asset, nil
}

// GetAsset fetches one asset by id, serving repeated reads from the cache
// until the TTL lapses.
func (c *Client) GetAsset(ctx context.Context, ec ExecutionContext, id string) (Asset, error) {
	if c.cacheTTL > 0 {
		if asset, ok := c.cache.Get(id); ok {
			return asset, nil
		}
	}

	var asset Asset
	if err := c.do(ctx, ec, http.MethodGet, "/v1/assets/"+url.PathEscape(id), nil, nil, &asset); err != nil {
		return Asset{}, fmt.Errorf("get asset %s: %w", id, err)
	}

	if c.cacheTTL > 0 {
		c.cache.Set(id, asset, c.cacheTTL)
	}
	return asset, nil
}

// SearchAssets lists assets matching the request filters.
func (c *Client) SearchAssets(ctx context.Context, ec ExecutionContext, req SearchAssetsRequest) (SearchAssetsResponse, error) {
	query := url.Values{}
	if req.Query != "" {
		query.Set("query", req.Query)
	}
	if req.AssetType != "" {
		query.Set("asset_type", req.AssetType)
	}
	if len(req.Tags) > 0 {
		query.Set("tags", strings.Join(req.Tags, ","))
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Offset > 0 {
		query.Set("offset", strconv.Itoa(req.Offset))
	}

	env, err := c.doRaw(ctx, ec, http.MethodGet, "/v1/assets", query, nil)
	if err != nil {
		return SearchAssetsResponse{}, fmt.Errorf("search assets: %w", err)
	}

	var resp SearchAssetsResponse
	if len(env.Items) > 0 {
		if err := json.Unmarshal(env.Items, &resp.Assets); err != nil {
			return SearchAssetsResponse{}, fmt.Errorf("search assets: decode items: %w", err)
		}
	}
	if env.Pagination != nil {
		resp.Pagination = *env.Pagination
	}
	return resp, nil
}

// UpdateAsset modifies an asset's mutable metadata and drops it from the cache.
func (c *Client) UpdateAsset(ctx context.Context, ec ExecutionContext, id string, req UpdateAssetRequest) (Asset, error) {
	var out struct {
		Asset Asset `json:"asset"`
	}
	if err := c.do(ctx, ec, http.MethodPut, "/v1/assets/"+url.PathEscape(id), nil, req, &out); err != nil {
		return Asset{}, fmt.Errorf("update asset %s: %w", id, err)
	}
	c.cache.Invalidate(id)
	return out.Asset, nil
}

// DeleteAsset removes an asset and drops it from the cache.
func (c *Client) DeleteAsset(ctx context.Context, ec ExecutionContext, id string) error {
	if err := c.do(ctx, ec, http.MethodDelete, "/v1/assets/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete asset %s: %w", id, err)
	}
	c.cache.Invalidate(id)
	return nil
}

// GetDependencies resolves an asset's dependency graph. maxDepth < 0 means
// unlimited.
func (c *Client) GetDependencies(ctx context.Context, ec ExecutionContext, id string, maxDepth int) (DependencyGraph, error) {
	query := url.Values{"max_depth": {strconv.Itoa(maxDepth)}}
	var graph DependencyGraph
	if err := c.do(ctx, ec, http.MethodGet, "/v1/assets/"+url.PathEscape(id)+"/dependencies", query, nil, &graph); err != nil {
		return DependencyGraph{}, fmt.Errorf("get dependencies of %s: %w", id, err)
	}
	return graph, nil
}

// GetDependents lists the assets that depend on the given one.
func (c *Client) GetDependents(ctx context.Context, ec ExecutionContext, id string) ([]Asset, error) {
	var dependents []Asset
	if err := c.do(ctx, ec, http.MethodGet, "/v1/assets/"+url.PathEscape(id)+"/dependents", nil, nil, &dependents); err != nil {
		return nil, fmt.Errorf("get dependents of %s: %w", id, err)
	}
	return dependents, nil
}

// Version reports the registry's build and API version.
func (c *Client) Version(ctx context.Context, ec ExecutionContext) (VersionInfo, error) {
	var info VersionInfo
	if err := c.do(ctx, ec, http.MethodGet, "/version", nil, nil, &info); err != nil {
		return VersionInfo{}, fmt.Errorf("version: %w", err)
	}
	return info, nil
}

// Health reports the registry's own health. It sits outside the /v1 execution
// boundary but the context headers are sent anyway for log correlation.
func (c *Client) Health(ctx context.Context, ec ExecutionContext) (HealthStatus, error) {
	req, err := c.newRequest(ctx, ec, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return HealthStatus{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return HealthStatus{}, apiError(resp.StatusCode, body)
	}

	var status HealthStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return HealthStatus{}, fmt.Errorf("health: decode response: %w", err)
	}
	return status, nil
}

// do performs a request and decodes the envelope's data field into out.
func (c *Client) do(ctx context.Context, ec ExecutionContext, method, path string, query url.Values, payload, out any) error {
	env, err := c.doRaw(ctx, ec, method, path, query, payload)
	if err != nil {
		return err
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, ec ExecutionContext, method, path string, query url.Values, payload any) (envelope, error) {
	req, err := c.newRequest(ctx, ec, method, path, query, payload)
	if err != nil {
		return envelope{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return envelope{}, apiError(resp.StatusCode, body)
	}
	if len(body) == 0 {
		return envelope{}, nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, ec ExecutionContext, method, path string, query url.Values, payload any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(HeaderExecutionID, ec.ExecutionID)
	req.Header.Set(HeaderParentSpanID, ec.ParentSpanID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// apiError decodes the registry's error body, falling back to the raw text
// when it is not the expected shape.
func apiError(status int, body []byte) error {
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
	}
	apiErr.Status = status
	return apiErr
}
