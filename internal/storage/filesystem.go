package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nayyaratul/chatbot-creation-flow/internal/config"
)

// filesystem implements System over a local directory. Each collection is
// stored as <data_dir>/<name>.json holding one JSON array.
type filesystem struct {
	dataDir string
	maxSize int64
	logger  *slog.Logger
}

// New creates a filesystem-backed collection store. The data directory is
// resolved to an absolute path during construction and created if missing.
func New(cfg *config.StorageConfig, logger *slog.Logger) (System, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data_dir required")
	}

	absDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data_dir: %w", err)
	}

	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("create data_dir: %w", err)
	}

	return &filesystem{
		dataDir: absDir,
		maxSize: cfg.MaxFileSizeBytes(),
		logger:  logger.With("system", "storage"),
	}, nil
}

func (f *filesystem) ReadAll(ctx context.Context, name string) ([]json.RawMessage, error) {
	path, err := f.collectionPath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []json.RawMessage{}, nil
		}
		f.logger.Error("collection read failed", "collection", name, "error", err)
		return []json.RawMessage{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		f.logger.Error("collection does not contain a JSON array", "collection", name, "error", err)
		return []json.RawMessage{}, nil
	}

	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

func (f *filesystem) WriteAll(ctx context.Context, name string, records []json.RawMessage) error {
	path, err := f.collectionPath(name)
	if err != nil {
		return err
	}

	if records == nil {
		records = []json.RawMessage{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize collection %s: %w", name, err)
	}

	if f.maxSize > 0 && int64(len(data)) > f.maxSize {
		return fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, name, len(data))
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (f *filesystem) collectionPath(name string) (string, error) {
	if name == "" {
		return "", ErrInvalidName
	}

	cleaned := filepath.Clean(name)
	if cleaned != name || strings.ContainsRune(cleaned, os.PathSeparator) || strings.HasPrefix(cleaned, ".") {
		return "", ErrInvalidName
	}

	return filepath.Join(f.dataDir, cleaned+".json"), nil
}
