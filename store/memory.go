package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store with the same observable semantics as
// MongoStore: unique-field rejection, version-checked updates, ErrNotFound
// on missing ids. Documents round-trip through bson so struct tags behave
// identically in both implementations. Used by tests and local tooling.
type MemoryStore struct {
	mu      sync.RWMutex
	cols    map[string]map[string]bson.M
	uniques map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cols:    map[string]map[string]bson.M{},
		uniques: map[string][]string{},
	}
}

// Unique declares unique fields for a collection, mirroring the unique
// indexes ensureIndexes creates on the real database.
func (s *MemoryStore) Unique(collection string, fields ...string) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uniques[collection] = append(s.uniques[collection], fields...)
	return s
}

func (s *MemoryStore) GetAll(ctx context.Context, collection string, dest any) error {
	return s.Find(ctx, collection, Query{}, dest)
}

func (s *MemoryStore) GetOne(ctx context.Context, collection, id string, dest any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.cols[collection][id]
	if !ok {
		return ErrNotFound
	}
	return decodeDoc(doc, dest)
}

func (s *MemoryStore) Find(ctx context.Context, collection string, q Query, dest any) error {
	s.mu.RLock()
	matched := s.match(collection, q)
	s.mu.RUnlock()

	if q.SortBy != "" {
		sortDocs(matched, q.SortBy, q.SortDesc)
	}
	if q.Page > 0 && q.PageSize > 0 {
		start := (q.Page - 1) * q.PageSize
		if start > len(matched) {
			start = len(matched)
		}
		end := start + q.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return decodeDocs(matched, dest)
}

func (s *MemoryStore) Count(ctx context.Context, collection string, q Query) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.match(collection, q))), nil
}

func (s *MemoryStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	m, err := encodeDoc(doc)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := m["_id"]; !ok {
		m["_id"] = primitive.NewObjectID()
	}
	id := hexID(m["_id"])

	for _, field := range s.uniques[collection] {
		val, ok := m[field]
		if !ok || val == "" {
			continue
		}
		for otherID, other := range s.cols[collection] {
			if otherID != id && valuesEqual(other[field], val) {
				return "", fmt.Errorf("%w: %s.%s", ErrDuplicate, collection, field)
			}
		}
	}

	if s.cols[collection] == nil {
		s.cols[collection] = map[string]bson.M{}
	}
	s.cols[collection][id] = m
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, version int64, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.cols[collection][id]
	if !ok {
		return ErrNotFound
	}
	if version >= 0 {
		if stored, _ := toInt64(doc["version"]); stored != version {
			return ErrConflict
		}
	}

	for _, field := range s.uniques[collection] {
		val, changed := fields[field]
		if !changed || val == "" {
			continue
		}
		for otherID, other := range s.cols[collection] {
			if otherID != id && valuesEqual(other[field], val) {
				return fmt.Errorf("%w: %s.%s", ErrDuplicate, collection, field)
			}
		}
	}

	// Normalize values through bson so reads look the same as after a real
	// database round trip.
	patch, err := encodeDoc(bson.M(fields))
	if err != nil {
		return err
	}
	for k, v := range patch {
		doc[k] = v
	}
	if version >= 0 {
		doc["version"] = version + 1
	}
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cols[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.cols[collection], id)
	return nil
}

// match returns copies of the matching documents. Caller holds at least a
// read lock.
func (s *MemoryStore) match(collection string, q Query) []bson.M {
	var out []bson.M
	for _, doc := range s.cols[collection] {
		ok := true
		for field, want := range q.Eq {
			if !valuesEqual(doc[field], want) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, doc)
		}
	}
	return out
}

func encodeDoc(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeDoc(doc bson.M, dest any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, dest)
}

func decodeDocs(docs []bson.M, dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("dest must be a pointer to a slice, got %T", dest)
	}
	slice := reflect.MakeSlice(v.Elem().Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(v.Elem().Type().Elem())
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	v.Elem().Set(slice)
	return nil
}

func hexID(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}

func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	if an, ok := toFloat(a); ok {
		if bn, ok := toFloat(b); ok {
			return an == bn
		}
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case primitive.DateTime:
		return float64(n), true
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func sortDocs(docs []bson.M, field string, desc bool) {
	sort.SliceStable(docs, func(i, j int) bool {
		less := lessValue(docs[i][field], docs[j][field])
		if desc {
			return lessValue(docs[j][field], docs[i][field])
		}
		return less
	})
}

func lessValue(a, b any) bool {
	if an, ok := toFloat(a); ok {
		if bn, ok := toFloat(b); ok {
			return an < bn
		}
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as < bs
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
