package application

import (
	"fmt"

	"github.com/research4me/paper-analyzer/internal/config"
	"github.com/research4me/paper-analyzer/internal/gateway"
	"github.com/research4me/paper-analyzer/internal/transport/handler"
)

// App represents the application with all business logic components
type App struct {
	Config         *config.Config
	AnalyzeHandler *handler.Analyze
}

// New creates a new application instance with all dependencies
func New() (*App, error) {
	// Load configuration; a missing gateway key fails here, at startup
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	gatewayClient := gateway.NewClient(cfg.GatewayAPIKey, cfg.GatewayModel, cfg.GatewayBaseURL, cfg.GatewayTimeout)
	analyzeHandler := handler.NewAnalyze(gatewayClient)

	return &App{
		Config:         cfg,
		AnalyzeHandler: analyzeHandler,
	}, nil
}
