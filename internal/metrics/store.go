package metrics

import (
	"context"

	"atelier-cms/store"
)

// InstrumentedStore decorates a Store with per-operation counters.
type InstrumentedStore struct {
	inner store.Store
	reg   *Registry
}

func InstrumentStore(inner store.Store, reg *Registry) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, reg: reg}
}

func (s *InstrumentedStore) GetAll(ctx context.Context, collection string, dest any) error {
	err := s.inner.GetAll(ctx, collection, dest)
	s.reg.ObserveStore(collection, "get_all", err)
	return err
}

func (s *InstrumentedStore) GetOne(ctx context.Context, collection, id string, dest any) error {
	err := s.inner.GetOne(ctx, collection, id, dest)
	s.reg.ObserveStore(collection, "get_one", err)
	return err
}

func (s *InstrumentedStore) Find(ctx context.Context, collection string, q store.Query, dest any) error {
	err := s.inner.Find(ctx, collection, q, dest)
	s.reg.ObserveStore(collection, "find", err)
	return err
}

func (s *InstrumentedStore) Count(ctx context.Context, collection string, q store.Query) (int64, error) {
	n, err := s.inner.Count(ctx, collection, q)
	s.reg.ObserveStore(collection, "count", err)
	return n, err
}

func (s *InstrumentedStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	id, err := s.inner.Add(ctx, collection, doc)
	s.reg.ObserveStore(collection, "add", err)
	return id, err
}

func (s *InstrumentedStore) Update(ctx context.Context, collection, id string, version int64, fields map[string]any) error {
	err := s.inner.Update(ctx, collection, id, version, fields)
	s.reg.ObserveStore(collection, "update", err)
	return err
}

func (s *InstrumentedStore) Remove(ctx context.Context, collection, id string) error {
	err := s.inner.Remove(ctx, collection, id)
	s.reg.ObserveStore(collection, "remove", err)
	return err
}
