// Package contract holds the static request/response contracts for the three
// gateway agents, and the structural validation applied to inbound bodies.
//
// The tables below are process-wide, read-only data. They are exposed
// verbatim by GET /contracts and consumed by Validate; nothing builds or
// mutates them at runtime.
package contract

// Agent names, in the order they are reported by the health route.
const (
	AgentIndex      = "index"
	AgentReputation = "reputation"
	AgentBootstrap  = "bootstrap"
)

// AgentNames returns the three agent names in canonical order.
func AgentNames() []string {
	return []string{AgentIndex, AgentReputation, AgentBootstrap}
}

// Property describes a single schema field. Enum, Minimum and Maximum are
// declarative: they are published through /contracts but not enforced by
// Validate, which checks structure only.
type Property struct {
	Type       string              `json:"type"`
	Enum       []string            `json:"enum,omitempty"`
	Items      *Property           `json:"items,omitempty"`
	Minimum    *float64            `json:"minimum,omitempty"`
	Maximum    *float64            `json:"maximum,omitempty"`
	Required   []string            `json:"required,omitempty"`
	Properties map[string]Property `json:"properties,omitempty"`
}

// Schema is a JSON-schema-shaped structural description of an object.
type Schema struct {
	Type       string              `json:"type"`
	Required   []string            `json:"required,omitempty"`
	Properties map[string]Property `json:"properties"`
}

// Pair groups the request and response schemas of one agent.
type Pair struct {
	Request  Schema `json:"request"`
	Response Schema `json:"response"`
}

func f(v float64) *float64 { return &v }

// Contracts maps each agent name to its schema pair.
var Contracts = map[string]Pair{
	AgentIndex: {
		Request: Schema{
			Type:     "object",
			Required: []string{"mode"},
			Properties: map[string]Property{
				"mode":       {Type: "string", Enum: []string{"full", "incremental", "rebuild"}},
				"asset_ids":  {Type: "array", Items: &Property{Type: "string"}},
				"asset_type": {Type: "string", Enum: []string{"model", "dataset", "prompt", "pipeline"}},
			},
		},
		Response: Schema{
			Type: "object",
			Properties: map[string]Property{
				"indexed_count": {Type: "integer"},
				"failed_count":  {Type: "integer"},
				"mode":          {Type: "string"},
				"errors":        {Type: "array", Items: &Property{Type: "string"}},
			},
		},
	},
	AgentReputation: {
		Request: Schema{
			Type:     "object",
			Required: []string{"agent_id", "operation"},
			Properties: map[string]Property{
				"agent_id":  {Type: "string"},
				"operation": {Type: "string", Enum: []string{"query", "record"}},
				"signal": {
					Type:     "object",
					Required: []string{"score", "category"},
					Properties: map[string]Property{
						"score":    {Type: "number", Minimum: f(0), Maximum: f(1)},
						"category": {Type: "string", Enum: []string{"reliability", "accuracy", "latency", "compliance"}},
						"evidence": {Type: "string"},
					},
				},
			},
		},
		Response: Schema{
			Type: "object",
			Properties: map[string]Property{
				"agent_id":        {Type: "string"},
				"overall_score":   {Type: "number", Minimum: f(0), Maximum: f(1)},
				"category_scores": {Type: "object"},
				"signal_count":    {Type: "integer"},
				"last_updated":    {Type: "string"},
			},
		},
	},
	AgentBootstrap: {
		Request: Schema{
			Type:     "object",
			Required: []string{"template_id", "agent_name"},
			Properties: map[string]Property{
				"template_id":      {Type: "string"},
				"agent_name":       {Type: "string"},
				"config_overrides": {Type: "object"},
			},
		},
		Response: Schema{
			Type: "object",
			Properties: map[string]Property{
				"agent_id":       {Type: "string"},
				"agent_name":     {Type: "string"},
				"template_id":    {Type: "string"},
				"status":         {Type: "string", Enum: []string{"created"}},
				"config_applied": {Type: "object"},
				"endpoints": {
					Type: "object",
					Properties: map[string]Property{
						"health": {Type: "string"},
						"invoke": {Type: "string"},
					},
				},
			},
		},
	},
}
