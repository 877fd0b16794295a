// Package store is the document-store client: five generic operations
// against named collections, backed by MongoDB in production and by an
// in-memory implementation with the same semantics in tests.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no document matches the given id.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a write violates a unique field.
	ErrDuplicate = errors.New("duplicate value for unique field")
	// ErrConflict is returned when an update carries a stale version.
	ErrConflict = errors.New("version conflict")
)

// NoVersion skips the optimistic-concurrency check on Update. Append-only
// collections and internal writes use it.
const NoVersion int64 = -1

// Query is the bounded filter shape both store implementations understand.
// Eq matches exact field values; Page is 1-based and pagination only applies
// when both Page and PageSize are positive.
type Query struct {
	Eq       map[string]any
	SortBy   string
	SortDesc bool
	Page     int
	PageSize int
}

// Store exposes generic CRUD over named collections. dest arguments follow
// the mongo-driver convention: a pointer to a struct for single reads, a
// pointer to a slice for list reads. No retries, no caching, no
// transactions; every write is a single remote round trip.
type Store interface {
	// GetAll decodes every document in the collection into dest.
	GetAll(ctx context.Context, collection string, dest any) error
	// GetOne decodes the document with the given hex id into dest.
	GetOne(ctx context.Context, collection, id string, dest any) error
	// Find decodes documents matching q into dest.
	Find(ctx context.Context, collection string, q Query, dest any) error
	// Count returns the number of documents matching q.Eq.
	Count(ctx context.Context, collection string, q Query) (int64, error)
	// Add inserts doc and returns the assigned hex id.
	Add(ctx context.Context, collection string, doc any) (string, error)
	// Update sets the given fields on the document with the given id.
	// When version >= 0 the update only applies if the stored version
	// matches, and the stored version is incremented; a mismatch returns
	// ErrConflict.
	Update(ctx context.Context, collection, id string, version int64, fields map[string]any) error
	// Remove deletes the document with the given id.
	Remove(ctx context.Context, collection, id string) error
}
