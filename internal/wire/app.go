package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/agentics/registry-gateway/internal/config"
	"github.com/agentics/registry-gateway/internal/service/bootstrap"
	"github.com/agentics/registry-gateway/internal/service/index"
	"github.com/agentics/registry-gateway/internal/service/reputation"
	"github.com/agentics/registry-gateway/internal/transport"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Config config.Config
	Server *http.Server
}

// Build is the composition root: the only place concrete agent handlers are
// wired to the router.
func Build(_ context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	router := transport.NewRouter(cfg.ServiceName,
		index.NewService(),
		reputation.NewService(),
		bootstrap.NewService(cfg.GatewayBaseURL),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	slog.Info("application wired", "port", cfg.Port, "service", cfg.ServiceName)

	return &App{Config: cfg, Server: server}, nil
}
