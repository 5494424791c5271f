package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nayyaratul/chatbot-creation-flow/internal/config"
)

// ErrUnauthenticated indicates the request carried no resolvable identity.
var ErrUnauthenticated = errors.New("auth: unauthenticated")

// Provider resolves request credentials into a User.
type Provider interface {
	// Authenticate returns the user for the request, or ErrUnauthenticated
	// when the request carries no valid credentials.
	Authenticate(r *http.Request) (*User, error)
}

// NewProvider constructs the identity provider selected by the configuration.
func NewProvider(cfg *config.AuthConfig) (Provider, error) {
	switch cfg.Provider {
	case config.AuthProviderStatic:
		user := User{
			ID:    cfg.Static.ID,
			Name:  cfg.Static.Name,
			Email: cfg.Static.Email,
			Role:  Role(cfg.Static.Role),
		}
		if err := user.Role.Validate(); err != nil {
			return nil, fmt.Errorf("static user: %w", err)
		}
		return &StaticProvider{User: user}, nil

	case config.AuthProviderJWT:
		return &JWTProvider{Secret: []byte(cfg.JWTSecret)}, nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

// StaticProvider attaches a fixed user to every request. It preserves the
// single-user development behavior of the original console.
type StaticProvider struct {
	User User
}

func (p *StaticProvider) Authenticate(r *http.Request) (*User, error) {
	user := p.User
	return &user, nil
}

// JWTProvider resolves users from HS256-signed bearer tokens. The token
// claims sub, name, email, and role map onto the User fields. No user store
// is consulted: the token is the identity.
type JWTProvider struct {
	Secret []byte
}

func (p *JWTProvider) Authenticate(r *http.Request) (*User, error) {
	raw := bearerToken(r)
	if raw == "" {
		return nil, ErrUnauthenticated
	}

	var claims struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
		jwt.RegisteredClaims
	}

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}

	user := &User{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  Role(claims.Role),
	}

	if user.ID == "" || user.Role.Validate() != nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
