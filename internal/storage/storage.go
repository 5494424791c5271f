package storage

import (
	"context"
	"encoding/json"
)

// System defines whole-collection read and write operations over named
// JSON array collections.
type System interface {
	// ReadAll returns every record in the named collection. A missing
	// collection yields an empty slice, not an error. Content that does
	// not parse as a JSON array is logged and treated as empty: reads
	// fail soft, favoring availability over correctness.
	ReadAll(ctx context.Context, name string) ([]json.RawMessage, error)

	// WriteAll serializes the full record slice and overwrites the named
	// collection. Write failures propagate to the caller, whose mutation
	// must be considered not durably committed.
	WriteAll(ctx context.Context, name string, records []json.RawMessage) error
}

// ReadCollection reads the named collection and decodes each record into T.
func ReadCollection[T any](ctx context.Context, sys System, name string) ([]T, error) {
	raws, err := sys.ReadAll(ctx, name)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(raws))
	for _, raw := range raws {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// WriteCollection encodes the records and overwrites the named collection.
func WriteCollection[T any](ctx context.Context, sys System, name string, records []T) error {
	raws := make([]json.RawMessage, len(records))
	for i, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return err
		}
		raws[i] = raw
	}
	return sys.WriteAll(ctx, name, raws)
}
