package agents

import "context"

// System defines the interface for agent storage and retrieval operations.
type System interface {
	// List returns every agent ordered by updatedAt descending, ties
	// keeping storage order.
	List(ctx context.Context) ([]Agent, error)

	// GetByID returns the matching agent or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Agent, error)

	// Create assigns a fresh identifier and timestamps, persists the new
	// record, and returns it.
	Create(ctx context.Context, cmd CreateCommand) (*Agent, error)

	// Update shallow-merges the partial document over the stored record.
	// Nested objects present in the partial replace the stored value
	// wholesale. The identifier and creation timestamp cannot change.
	Update(ctx context.Context, id string, partial map[string]any) (*Agent, error)

	// Delete removes the matching agent or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
