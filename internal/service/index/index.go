// Package index acknowledges asset (re)indexing requests. The actual index
// build runs in the external search service; this handler only echoes the
// requested cardinality so callers can confirm the contract round-trip.
package index

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/agentics/registry-gateway/internal/domain/contract"
)

type Request struct {
	Mode      string   `json:"mode"`
	AssetIDs  []string `json:"asset_ids,omitempty"`
	AssetType string   `json:"asset_type,omitempty"`
}

type Response struct {
	IndexedCount int      `json:"indexed_count"`
	FailedCount  int      `json:"failed_count"`
	Mode         string   `json:"mode"`
	Errors       []string `json:"errors"`
}

type Service struct{}

func NewService() *Service { return &Service{} }

func (s *Service) Name() string { return contract.AgentIndex }

func (s *Service) Handle(ctx context.Context, body []byte) (any, error) {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("decode index request: %w", err)
	}

	slog.InfoContext(ctx, "index request acknowledged",
		"mode", req.Mode,
		"asset_count", len(req.AssetIDs),
	)

	// Indexing is delegated; no assets are filtered and no failures are
	// simulated here.
	return Response{
		IndexedCount: len(req.AssetIDs),
		FailedCount:  0,
		Mode:         req.Mode,
		Errors:       []string{},
	}, nil
}
