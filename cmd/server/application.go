package main

import (
	"log/slog"
	"net/http"

	"github.com/nayyaratul/chatbot-creation-flow/internal/agents"
	"github.com/nayyaratul/chatbot-creation-flow/internal/auth"
	"github.com/nayyaratul/chatbot-creation-flow/internal/config"
	"github.com/nayyaratul/chatbot-creation-flow/internal/knowledge"
	"github.com/nayyaratul/chatbot-creation-flow/internal/storage"
)

// Application wires the domain systems together with their infrastructure.
type Application struct {
	config   *config.Config
	logger   *slog.Logger
	provider auth.Provider

	agents    agents.System
	knowledge knowledge.System
}

// NewApplication constructs the storage layer, domain systems, and identity
// provider from the finalized configuration.
func NewApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	provider, err := auth.NewProvider(&cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &Application{
		config:    cfg,
		logger:    logger,
		provider:  provider,
		agents:    agents.New(store, logger),
		knowledge: knowledge.New(store, logger),
	}, nil
}

// Handler builds the complete HTTP handler: routes wrapped in the
// middleware stack.
func (app *Application) Handler() http.Handler {
	return app.buildMiddleware().Wrap(app.buildRoutes())
}
