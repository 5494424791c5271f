package prompt

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nayyaratul/chatbot-creation-flow/internal/agents"
	"github.com/nayyaratul/chatbot-creation-flow/internal/auth"
	"github.com/nayyaratul/chatbot-creation-flow/internal/routes"
	"github.com/nayyaratul/chatbot-creation-flow/pkg/handlers"
)

// PreviewRequest is the body of a preview invocation.
type PreviewRequest struct {
	AgentConfig Config `json:"agentConfig"`
	UserMessage string `json:"userMessage"`
}

// PreviewResponse wraps the generated reply.
type PreviewResponse struct {
	Response string `json:"response"`
}

// Handler provides HTTP handlers for preview responses and composed
// system prompts.
type Handler struct {
	agents agents.System
	logger *slog.Logger
}

// NewHandler creates a new prompt HTTP handler. The agents system resolves
// stored records for the system-prompt endpoint.
func NewHandler(sys agents.System, logger *slog.Logger) *Handler {
	return &Handler{
		agents: sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for preview endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/preview",
		Description: "Preview responses and system prompts",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Preview},
			{Method: "GET", Pattern: "/system-prompt", Handler: h.SystemPrompt},
		},
	}
}

// Preview handles POST /api/preview, generating a canned reply for the
// given agent configuration and user message.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserFrom(r.Context()); !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrUnauthenticated)
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if req.UserMessage == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingMessage)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PreviewResponse{
		Response: Respond(req.AgentConfig, req.UserMessage),
	})
}

// SystemPrompt handles GET /api/preview/system-prompt?agentId=, returning
// the composed system prompt for a stored agent.
func (h *Handler) SystemPrompt(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserFrom(r.Context()); !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrUnauthenticated)
		return
	}

	record, err := h.agents.GetByID(r.Context(), r.URL.Query().Get("agentId"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"prompt": Compose(*record),
	})
}
