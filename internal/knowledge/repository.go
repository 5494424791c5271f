package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nayyaratul/chatbot-creation-flow/internal/storage"
)

// Collection is the storage collection name for knowledge-base files.
const Collection = "knowledgeBases"

type repo struct {
	store  storage.System
	logger *slog.Logger
}

// New creates a new knowledge-base repository implementing the System interface.
func New(store storage.System, logger *slog.Logger) System {
	return &repo{
		store:  store,
		logger: logger.With("system", "knowledge"),
	}
}

func (r *repo) List(ctx context.Context, filter Filter) ([]File, error) {
	records, err := storage.ReadCollection[File](ctx, r.store, Collection)
	if err != nil {
		return nil, fmt.Errorf("read knowledge bases: %w", err)
	}

	matched := make([]File, 0, len(records))
	for i := range records {
		if filter.Matches(&records[i]) {
			matched = append(matched, records[i])
		}
	}
	return matched, nil
}

func (r *repo) GetByID(ctx context.Context, id string) (*File, error) {
	records, err := storage.ReadCollection[File](ctx, r.store, Collection)
	if err != nil {
		return nil, fmt.Errorf("read knowledge bases: %w", err)
	}

	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) GetByIDs(ctx context.Context, ids []string) ([]File, error) {
	records, err := storage.ReadCollection[File](ctx, r.store, Collection)
	if err != nil {
		return nil, fmt.Errorf("read knowledge bases: %w", err)
	}

	matched := make([]File, 0, len(ids))
	for i := range records {
		if slices.Contains(ids, records[i].ID) {
			matched = append(matched, records[i])
		}
	}
	return matched, nil
}
