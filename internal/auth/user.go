// Package auth provides the identity model and pluggable identity providers
// for the admin console. Providers resolve request credentials into a User;
// access decisions themselves live with the domains that own the records.
package auth

import "fmt"

// Role represents a console user's authorization role.
type Role string

// Console roles, ordered from most to least privileged.
const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleViewer     Role = "viewer"
)

// Validate checks if the role is a recognized console role.
func (r Role) Validate() error {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEditor, RoleViewer:
		return nil
	default:
		return fmt.Errorf("invalid role: %s", r)
	}
}

// IsAdmin reports whether the role carries full administrative rights.
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// User represents an authenticated console user. Users are supplied by an
// identity provider on every request and are not persisted by this service.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
