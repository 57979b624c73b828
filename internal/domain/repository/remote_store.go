// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"encoding/json"

	"jalsetu/internal/errors"
)

var (
	// ErrPathNotFound is returned when no document exists at a path.
	ErrPathNotFound = errors.New("no document at path")

	// ErrInvalidKey is returned for ids the store cannot address.
	ErrInvalidKey = errors.New("invalid path key")
)

// RemoteStore is a hierarchical key-path document store. Every path holds one
// JSON document; a collection path holds a mapping of child key to document.
// Writes are atomic per call and last write wins.
type RemoteStore interface {
	// Get decodes the document at path into dest. Returns ErrPathNotFound when empty.
	Get(ctx context.Context, path string, dest any) error

	// List returns the children of a collection path keyed by child key.
	// A missing collection is an empty map.
	List(ctx context.Context, path string) (map[string]json.RawMessage, error)

	// Set replaces the document at path.
	Set(ctx context.Context, path string, value any) error

	// Update writes only the given children of path, leaving siblings intact.
	Update(ctx context.Context, path string, fields map[string]any) error

	// Delete removes the document at path and everything below it.
	Delete(ctx context.Context, path string) error
}
