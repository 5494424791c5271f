package middleware

import (
	"net/http"

	"github.com/nayyaratul/chatbot-creation-flow/internal/config"
	"github.com/rs/cors"
)

// CORS returns middleware applying the configured Cross-Origin Resource
// Sharing policy. When CORS is disabled, requests pass through untouched.
func CORS(cfg *config.CORSConfig) Middleware {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}
