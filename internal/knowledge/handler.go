package knowledge

import (
	"log/slog"
	"net/http"

	"github.com/nayyaratul/chatbot-creation-flow/internal/auth"
	"github.com/nayyaratul/chatbot-creation-flow/internal/routes"
	"github.com/nayyaratul/chatbot-creation-flow/pkg/handlers"
)

// Handler provides HTTP handlers for knowledge-base listing and lookup.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new knowledge-base HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for knowledge-base endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/knowledge-bases",
		Description: "Knowledge-base file metadata",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

// List handles GET /api/knowledge-bases with optional search, fileType,
// uploadedBy, dateFrom, and dateTo query filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserFrom(r.Context()); !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrUnauthenticated)
		return
	}

	filter := FilterFromQuery(r.URL.Query())

	records, err := h.sys.List(r.Context(), filter)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, records)
}

// Find handles GET /api/knowledge-bases/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserFrom(r.Context()); !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrUnauthenticated)
		return
	}

	record, err := h.sys.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, record)
}
