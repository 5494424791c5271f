package main

import (
	"github.com/nayyaratul/chatbot-creation-flow/internal/middleware"
)

// buildMiddleware creates and configures the middleware stack with
// trailing-slash normalization, request logging, and CORS.
func (app *Application) buildMiddleware() middleware.System {
	stack := middleware.New()
	stack.Use(middleware.TrimSlash())
	stack.Use(middleware.Logger(app.logger))
	stack.Use(middleware.CORS(&app.config.CORS))
	return stack
}
