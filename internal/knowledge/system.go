package knowledge

import "context"

// System defines read-only retrieval operations over knowledge-base files.
type System interface {
	// List returns the files matching every set filter predicate, in
	// collection storage order.
	List(ctx context.Context, filter Filter) ([]File, error)

	// GetByID returns the matching file or ErrNotFound.
	GetByID(ctx context.Context, id string) (*File, error)

	// GetByIDs returns the files whose identifier is in the given set,
	// in collection storage order rather than input order.
	GetByIDs(ctx context.Context, ids []string) ([]File, error)
}
