package transport

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentics/registry-gateway/internal/domain/contract"
	"github.com/agentics/registry-gateway/internal/domain/execution"
	portagent "github.com/agentics/registry-gateway/internal/port/agent"
)

// agentRoutePrefix is where every agent operation is mounted.
const agentRoutePrefix = "/v1/registry/"

// availableRoutes is the canonical route catalog returned on 404.
func availableRoutes() []string {
	routes := []string{"/health", "/contracts"}
	for _, name := range contract.AgentNames() {
		routes = append(routes, agentRoutePrefix+name)
	}
	return routes
}

// NewRouter assembles the gateway's single HTTP surface: two meta routes,
// one POST route per agent handler, and envelope-shaped 404/405 fallbacks.
func NewRouter(service string, handlers ...portagent.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())
	r.Use(ExecutionMetadata(service))

	r.GET("/health", health)
	r.GET("/", health)
	r.GET("/contracts", contracts)

	for _, h := range handlers {
		r.POST(agentRoutePrefix+h.Name(), invoke(h))
	}

	r.NoMethod(methodNotAllowed)
	r.NoRoute(notFound)

	return r
}

func health(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"status": "healthy",
		"agents": contract.AgentNames(),
	}, execution.Routed())
}

func contracts(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"contracts": contract.Contracts,
	}, execution.Routed())
}

// invoke validates the body against the agent's request contract, dispatches,
// and wraps the outcome. The agent layer entry reflects where the request
// died: failed with no duration on a contract violation, failed with a zero
// duration when the handler itself errored.
func invoke(h portagent.Handler) gin.HandlerFunc {
	layer := portagent.LayerName(h.Name())
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			body = nil
		}

		if verr := contract.Validate(h.Name(), body); verr != nil {
			respond(c, http.StatusBadRequest, gin.H{"error": verr.Error()},
				execution.Routed(), execution.Failed(layer))
			return
		}

		start := time.Now()
		data, err := dispatch(c, h, body)
		if err != nil {
			msg := err.Error()
			if msg == "" {
				msg = "agent execution failed"
			}
			slog.ErrorContext(c.Request.Context(), "agent handler failed",
				"agent", h.Name(), "error", err)
			respond(c, http.StatusInternalServerError, gin.H{"error": msg},
				execution.Routed(), execution.FailedZero(layer))
			return
		}

		respond(c, http.StatusOK, gin.H{"data": data},
			execution.Routed(), execution.Completed(layer, time.Since(start)))
	}
}

// dispatch shields the router from panicking handlers so every failure still
// produces the envelope.
func dispatch(c *gin.Context, h portagent.Handler, body []byte) (data any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return h.Handle(c.Request.Context(), body)
}

func methodNotAllowed(c *gin.Context) {
	respond(c, http.StatusMethodNotAllowed,
		gin.H{"error": fmt.Sprintf("Method %s not allowed on %s", c.Request.Method, c.Request.URL.Path)},
		execution.Routed())
}

func notFound(c *gin.Context) {
	respond(c, http.StatusNotFound, gin.H{
		"error":            fmt.Sprintf("Route not found: %s", c.Request.URL.Path),
		"available_routes": availableRoutes(),
	}, execution.Failed(execution.LayerRouting))
}
