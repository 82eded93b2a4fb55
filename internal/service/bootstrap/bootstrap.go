// Package bootstrap fronts agent provisioning. The external provisioning
// service does the real template instantiation; this handler mints an agent
// id, echoes the requested configuration, and advertises where the newly
// created agent would be reachable.
package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agentics/registry-gateway/internal/domain/contract"
)

// Endpoint suffixes appended to the configured gateway base URL.
const (
	healthSuffix = "/health"
	invokeSuffix = "/v1/registry/bootstrap"
)

type Request struct {
	TemplateID      string         `json:"template_id"`
	AgentName       string         `json:"agent_name"`
	ConfigOverrides map[string]any `json:"config_overrides,omitempty"`
}

type Endpoints struct {
	Health string `json:"health"`
	Invoke string `json:"invoke"`
}

type Response struct {
	AgentID       string         `json:"agent_id"`
	AgentName     string         `json:"agent_name"`
	TemplateID    string         `json:"template_id"`
	Status        string         `json:"status"`
	ConfigApplied map[string]any `json:"config_applied"`
	Endpoints     Endpoints      `json:"endpoints"`
}

type Service struct {
	baseURL string
}

// NewService builds the bootstrap handler. baseURL is the public origin used
// to assemble the advertised endpoints.
func NewService(baseURL string) *Service {
	return &Service{baseURL: baseURL}
}

func (s *Service) Name() string { return contract.AgentBootstrap }

func (s *Service) Handle(ctx context.Context, body []byte) (any, error) {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("decode bootstrap request: %w", err)
	}

	applied := req.ConfigOverrides
	if applied == nil {
		applied = map[string]any{}
	}

	agentID := uuid.NewString()
	slog.InfoContext(ctx, "bootstrap request acknowledged",
		"agent_id", agentID,
		"template_id", req.TemplateID,
		"agent_name", req.AgentName,
	)

	return Response{
		AgentID:       agentID,
		AgentName:     req.AgentName,
		TemplateID:    req.TemplateID,
		Status:        "created",
		ConfigApplied: applied,
		Endpoints: Endpoints{
			Health: s.baseURL + healthSuffix,
			Invoke: s.baseURL + invokeSuffix,
		},
	}, nil
}
