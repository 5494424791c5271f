package agents

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nayyaratul/chatbot-creation-flow/internal/storage"
	"github.com/nayyaratul/chatbot-creation-flow/pkg/decode"
)

// Collection is the storage collection name for agent records.
const Collection = "agents"

type repo struct {
	store  storage.System
	logger *slog.Logger
}

// New creates a new agents repository implementing the System interface.
func New(store storage.System, logger *slog.Logger) System {
	return &repo{
		store:  store,
		logger: logger.With("system", "agents"),
	}
}

func (r *repo) List(ctx context.Context) ([]Agent, error) {
	records, err := storage.ReadCollection[Agent](ctx, r.store, Collection)
	if err != nil {
		return nil, fmt.Errorf("read agents: %w", err)
	}

	// RFC 3339 UTC timestamps compare lexically in chronological order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt > records[j].UpdatedAt
	})

	return records, nil
}

func (r *repo) GetByID(ctx context.Context, id string) (*Agent, error) {
	records, err := storage.ReadCollection[Agent](ctx, r.store, Collection)
	if err != nil {
		return nil, fmt.Errorf("read agents: %w", err)
	}

	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	records, err := storage.ReadCollection[Agent](ctx, r.store, Collection)
	if err != nil {
		return nil, fmt.Errorf("read agents: %w", err)
	}

	now := timestamp()
	record := cmd.toAgent()
	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now

	records = append(records, record)
	if err := storage.WriteCollection(ctx, r.store, Collection, records); err != nil {
		return nil, fmt.Errorf("persist agents: %w", err)
	}

	r.logger.Info("agent created", "id", record.ID, "name", record.Name)
	return &record, nil
}

func (r *repo) Update(ctx context.Context, id string, partial map[string]any) (*Agent, error) {
	records, err := storage.ReadCollection[Agent](ctx, r.store, Collection)
	if err != nil {
		return nil, fmt.Errorf("read agents: %w", err)
	}

	index := -1
	for i := range records {
		if records[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrNotFound
	}

	merged, err := merge(records[index], partial)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	records[index] = merged
	if err := storage.WriteCollection(ctx, r.store, Collection, records); err != nil {
		return nil, fmt.Errorf("persist agents: %w", err)
	}

	r.logger.Info("agent updated", "id", merged.ID, "name", merged.Name)
	return &merged, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	records, err := storage.ReadCollection[Agent](ctx, r.store, Collection)
	if err != nil {
		return fmt.Errorf("read agents: %w", err)
	}

	index := -1
	for i := range records {
		if records[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrNotFound
	}

	records = append(records[:index], records[index+1:]...)
	if err := storage.WriteCollection(ctx, r.store, Collection, records); err != nil {
		return fmt.Errorf("persist agents: %w", err)
	}

	r.logger.Info("agent deleted", "id", id)
	return nil
}

// merge applies a shallow field-by-field merge of the partial document over
// the existing record. Nested objects such as settings are replaced
// wholesale when present in the partial, not deep-merged. The identifier
// and creation timestamp always keep their stored values.
func merge(existing Agent, partial map[string]any) (Agent, error) {
	doc, err := decode.ToMap(existing)
	if err != nil {
		return Agent{}, err
	}

	for key, value := range partial {
		doc[key] = value
	}

	doc["id"] = existing.ID
	doc["createdAt"] = existing.CreatedAt
	doc["updatedAt"] = timestamp()

	return decode.FromMap[Agent](doc)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
