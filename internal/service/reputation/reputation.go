// Package reputation fronts agent-reputation scoring. Signal aggregation and
// score storage live in the external reputation service; this handler returns
// a zeroed score sheet for both query and record operations, so a "record"
// has no observable effect here.
package reputation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agentics/registry-gateway/internal/domain/contract"
)

type Signal struct {
	Score    float64 `json:"score"`
	Category string  `json:"category"`
	Evidence string  `json:"evidence,omitempty"`
}

type Request struct {
	AgentID   string  `json:"agent_id"`
	Operation string  `json:"operation"`
	Signal    *Signal `json:"signal,omitempty"`
}

type Response struct {
	AgentID        string             `json:"agent_id"`
	OverallScore   float64            `json:"overall_score"`
	CategoryScores map[string]float64 `json:"category_scores"`
	SignalCount    int                `json:"signal_count"`
	LastUpdated    time.Time          `json:"last_updated"`
}

// Categories is the fixed score breakdown every response carries.
var Categories = []string{"reliability", "accuracy", "latency", "compliance"}

type Service struct{}

func NewService() *Service { return &Service{} }

func (s *Service) Name() string { return contract.AgentReputation }

func (s *Service) Handle(ctx context.Context, body []byte) (any, error) {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("decode reputation request: %w", err)
	}

	scores := make(map[string]float64, len(Categories))
	for _, category := range Categories {
		scores[category] = 0
	}

	return Response{
		AgentID:        req.AgentID,
		OverallScore:   0,
		CategoryScores: scores,
		SignalCount:    0,
		LastUpdated:    time.Now().UTC(),
	}, nil
}
