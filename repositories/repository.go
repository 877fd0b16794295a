// Package repositories provides typed per-collection access on top of the
// generic document store. Each repository embeds Collection for the shared
// CRUD surface and adds the lookups its entity needs.
package repositories

import (
	"context"

	"atelier-cms/store"
)

// Collection is the shared typed CRUD wrapper over one named collection.
type Collection[T any] struct {
	s    store.Store
	name string
}

func NewCollection[T any](s store.Store, name string) Collection[T] {
	return Collection[T]{s: s, name: name}
}

func (c Collection[T]) Name() string { return c.name }

func (c Collection[T]) GetAll(ctx context.Context, q store.Query) ([]T, error) {
	var out []T
	if err := c.s.Find(ctx, c.name, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var doc T
	if err := c.s.GetOne(ctx, c.name, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindOne returns the first document matching q, or store.ErrNotFound.
func (c Collection[T]) FindOne(ctx context.Context, q store.Query) (*T, error) {
	q.Page = 1
	q.PageSize = 1
	docs, err := c.GetAll(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, store.ErrNotFound
	}
	return &docs[0], nil
}

func (c Collection[T]) Count(ctx context.Context, q store.Query) (int64, error) {
	return c.s.Count(ctx, c.name, q)
}

func (c Collection[T]) Add(ctx context.Context, doc *T) (string, error) {
	return c.s.Add(ctx, c.name, doc)
}

func (c Collection[T]) Update(ctx context.Context, id string, version int64, fields map[string]any) error {
	return c.s.Update(ctx, c.name, id, version, fields)
}

func (c Collection[T]) Remove(ctx context.Context, id string) error {
	return c.s.Remove(ctx, c.name, id)
}
