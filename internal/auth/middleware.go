package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nayyaratul/chatbot-creation-flow/pkg/handlers"
)

type contextKey struct{}

// UserFrom returns the authenticated user stored in the context, if any.
func UserFrom(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(contextKey{}).(*User)
	return user, ok
}

// WithUser returns a context carrying the given user.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// Middleware returns middleware that authenticates every request through the
// provider and stores the resolved user in the request context. Requests
// that cannot be authenticated receive a 401 JSON error.
func Middleware(provider Provider, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := provider.Authenticate(r)
			if err != nil {
				handlers.RespondError(w, logger, http.StatusUnauthorized, ErrUnauthenticated)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
