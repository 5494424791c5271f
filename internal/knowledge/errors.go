package knowledge

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates the requested knowledge-base file does not exist.
var ErrNotFound = errors.New("knowledge base not found")

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
