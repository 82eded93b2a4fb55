// Package agent defines the contract between the transport router and the
// per-agent handlers it dispatches to.
package agent

import "context"

// Handler is one routable agent. Handle receives the already-validated raw
// request body and returns the value placed under "data" in the response
// envelope. A returned error surfaces as HTTP 500 with a failed layer entry.
type Handler interface {
	// Name is the agent name used in routes, contracts, and layer entries.
	Name() string
	Handle(ctx context.Context, body []byte) (any, error)
}

// LayerName derives the layers_executed entry name for an agent.
func LayerName(name string) string {
	return name + "_agent"
}
