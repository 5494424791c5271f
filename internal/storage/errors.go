// Package storage provides flat-file JSON collection persistence. Each
// collection is a single JSON array file that is read and rewritten in full
// on every call. There is no locking: concurrent writers to the same
// collection race and the last writer wins.
package storage

import "errors"

// Storage errors returned by System implementations.
var (
	// ErrInvalidName indicates the collection name is malformed.
	// This includes empty names and path traversal attempts.
	ErrInvalidName = errors.New("storage: invalid collection name")

	// ErrTooLarge indicates the serialized collection exceeds the
	// configured maximum file size.
	ErrTooLarge = errors.New("storage: collection exceeds max file size")
)
