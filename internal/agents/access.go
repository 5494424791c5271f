package agents

import (
	"slices"

	"github.com/nayyaratul/chatbot-creation-flow/internal/auth"
)

// Access policy for agent records. These predicates are pure and perform no
// I/O; the HTTP handlers consult them before every operation.

// CanEdit reports whether the user may modify the agent. Admins always may;
// editors may when they own or co-own the record; viewers never may.
func CanEdit(agent *Agent, user *auth.User) bool {
	if user.Role.IsAdmin() {
		return true
	}
	if user.Role == auth.RoleEditor {
		return isOwner(agent, user.ID)
	}
	return false
}

// CanView reports whether the user may read the agent. Admins see every
// record; editors and viewers see only records they own or co-own.
func CanView(agent *Agent, user *auth.User) bool {
	if user.Role.IsAdmin() {
		return true
	}
	return isOwner(agent, user.ID)
}

// CanCreate reports whether the user may create agents. Only viewers are
// excluded.
func CanCreate(user *auth.User) bool {
	return user.Role != auth.RoleViewer
}

// CanDelete reports whether the user may delete agents. Deletion is
// restricted to admins: co-ownership grants edit rights but never delete.
func CanDelete(user *auth.User) bool {
	return user.Role.IsAdmin()
}

func isOwner(agent *Agent, userID string) bool {
	return agent.OwnerID == userID || slices.Contains(agent.Owners, userID)
}
