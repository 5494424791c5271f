package main

import (
	"net/http"

	"github.com/nayyaratul/chatbot-creation-flow/internal/agents"
	"github.com/nayyaratul/chatbot-creation-flow/internal/auth"
	"github.com/nayyaratul/chatbot-creation-flow/internal/knowledge"
	"github.com/nayyaratul/chatbot-creation-flow/internal/prompt"
	"github.com/nayyaratul/chatbot-creation-flow/internal/routes"
	"github.com/nayyaratul/chatbot-creation-flow/pkg/handlers"
)

// buildRoutes registers all HTTP routes. API routes require an
// authenticated user; the health probe does not.
func (app *Application) buildRoutes() http.Handler {
	r := routes.New(app.logger)

	agentHandler := agents.NewHandler(app.agents, app.logger)
	r.RegisterGroup(agentHandler.Routes())

	knowledgeHandler := knowledge.NewHandler(app.knowledge, app.logger)
	r.RegisterGroup(knowledgeHandler.Routes())

	promptHandler := prompt.NewHandler(app.agents, app.logger)
	r.RegisterGroup(promptHandler.Routes())

	api := auth.Middleware(app.provider, app.logger)(r.Build())

	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	mux.HandleFunc("GET /health", handleHealthCheck)

	return mux
}

// handleHealthCheck responds with a liveness payload for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
