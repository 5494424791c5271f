package prompt

import (
	"errors"
	"net/http"

	"github.com/nayyaratul/chatbot-creation-flow/internal/agents"
)

// ErrMissingMessage indicates a preview request without a user message.
var ErrMissingMessage = errors.New("userMessage is required")

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingMessage) {
		return http.StatusBadRequest
	}
	if errors.Is(err, agents.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
