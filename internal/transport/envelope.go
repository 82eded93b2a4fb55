package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/agentics/registry-gateway/internal/domain/execution"
)

// metadataKey is where ExecutionMetadata middleware parks the per-request
// metadata in the gin context.
const metadataKey = "execution_metadata"

func metadataFrom(c *gin.Context) execution.Metadata {
	if v, ok := c.Get(metadataKey); ok {
		if meta, ok := v.(execution.Metadata); ok {
			return meta
		}
	}
	// The middleware always runs first; this is a guard for handlers
	// exercised outside the full chain.
	return execution.NewMetadata("unknown", "")
}

// respond writes the uniform response envelope: the caller's payload plus
// execution_metadata and the ordered layers_executed list. Every body the
// gateway emits, success or error, goes through here.
func respond(c *gin.Context, status int, payload gin.H, layers ...execution.Layer) {
	payload["execution_metadata"] = metadataFrom(c)
	payload["layers_executed"] = layers
	c.JSON(status, payload)
}
