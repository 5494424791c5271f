// Package middleware provides the HTTP middleware stack for the service:
// trailing-slash normalization, request logging, and CORS.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes middleware into a single wrapping chain.
type System interface {
	// Use appends middleware to the chain. The first middleware added
	// becomes the outermost wrapper.
	Use(m Middleware)

	// Wrap applies the chain around the given handler.
	Wrap(handler http.Handler) http.Handler
}

type stack struct {
	chain []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &stack{}
}

func (s *stack) Use(m Middleware) {
	s.chain = append(s.chain, m)
}

func (s *stack) Wrap(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(s.chain) - 1; i >= 0; i-- {
		wrapped = s.chain[i](wrapped)
	}
	return wrapped
}
