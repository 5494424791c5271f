package config

import (
	"fmt"
	"os"
)

const (
	// EnvAuthProvider overrides the identity provider selection.
	EnvAuthProvider = "AUTH_PROVIDER"

	// EnvAuthJWTSecret overrides the JWT signing secret.
	EnvAuthJWTSecret = "AUTH_JWT_SECRET"
)

// Identity provider selection values.
const (
	AuthProviderStatic = "static"
	AuthProviderJWT    = "jwt"
)

// AuthConfig contains identity provider configuration.
type AuthConfig struct {
	// Provider selects the identity provider: "static" or "jwt".
	// Default: "static"
	Provider  string           `toml:"provider"`
	Static    StaticUserConfig `toml:"static"`
	JWTSecret string           `toml:"jwt_secret"`
}

// StaticUserConfig describes the fixed user attached to every request
// by the static identity provider.
type StaticUserConfig struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Email string `toml:"email"`
	Role  string `toml:"role"`
}

// Finalize applies defaults, loads environment overrides, and validates the auth configuration.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.JWTSecret != "" {
		c.JWTSecret = overlay.JWTSecret
	}
	if overlay.Static.ID != "" {
		c.Static.ID = overlay.Static.ID
	}
	if overlay.Static.Name != "" {
		c.Static.Name = overlay.Static.Name
	}
	if overlay.Static.Email != "" {
		c.Static.Email = overlay.Static.Email
	}
	if overlay.Static.Role != "" {
		c.Static.Role = overlay.Static.Role
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.Provider == "" {
		c.Provider = AuthProviderStatic
	}
	if c.Static.ID == "" {
		c.Static.ID = "user-1"
	}
	if c.Static.Name == "" {
		c.Static.Name = "Current User"
	}
	if c.Static.Email == "" {
		c.Static.Email = "user@example.com"
	}
	if c.Static.Role == "" {
		c.Static.Role = "admin"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthProvider); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvAuthJWTSecret); v != "" {
		c.JWTSecret = v
	}
}

func (c *AuthConfig) validate() error {
	switch c.Provider {
	case AuthProviderStatic:
		return nil
	case AuthProviderJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("jwt_secret required for jwt provider")
		}
		return nil
	default:
		return fmt.Errorf("invalid provider: %s (must be static or jwt)", c.Provider)
	}
}
