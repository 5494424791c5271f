package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const (
	// EnvStorageDataDir overrides the storage data directory.
	EnvStorageDataDir = "STORAGE_DATA_DIR"

	// EnvStorageMaxFileSize overrides the maximum serialized collection size.
	EnvStorageMaxFileSize = "STORAGE_MAX_FILE_SIZE"
)

// StorageConfig contains JSON collection storage configuration.
type StorageConfig struct {
	// DataDir is the directory holding the JSON collection files.
	// Default: ".data"
	DataDir        string `toml:"data_dir"`
	MaxFileSize    string `toml:"max_file_size"`
	maxFileSizeVal int64
}

// MaxFileSizeBytes returns the parsed maximum collection size in bytes.
func (c *StorageConfig) MaxFileSizeBytes() int64 {
	return c.maxFileSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *StorageConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *StorageConfig) Merge(overlay *StorageConfig) {
	if overlay.DataDir != "" {
		c.DataDir = overlay.DataDir
	}
	if overlay.MaxFileSize != "" {
		c.MaxFileSize = overlay.MaxFileSize
	}
}

func (c *StorageConfig) loadDefaults() {
	if c.DataDir == "" {
		c.DataDir = ".data"
	}
	if c.MaxFileSize == "" {
		c.MaxFileSize = "10MB"
	}
}

func (c *StorageConfig) loadEnv() {
	if v := os.Getenv(EnvStorageDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvStorageMaxFileSize); v != "" {
		c.MaxFileSize = v
	}
}

func (c *StorageConfig) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir required")
	}

	size, err := units.FromHumanSize(c.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid max_file_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_file_size must be positive")
	}
	c.maxFileSizeVal = size

	return nil
}
