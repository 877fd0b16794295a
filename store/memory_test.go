package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"atelier-cms/models"
)

func TestMemoryStoreAddThenGetOne(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	c := models.Category{
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Name:      "Web Design",
		Slug:      "web-design",
	}
	id, err := s.Add(ctx, "categories", &c)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var got models.Category
	require.NoError(t, s.GetOne(ctx, "categories", id, &got))
	require.Equal(t, id, got.ID.Hex())
	require.Equal(t, "Web Design", got.Name)
	require.Equal(t, "web-design", got.Slug)
}

func TestMemoryStoreGetOneMissing(t *testing.T) {
	s := NewMemoryStore()
	var got models.Category
	err := s.GetOne(context.Background(), "categories", "ffffffffffffffffffffffff", &got)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUpdatePartialFields(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Add(ctx, "categories", &models.Category{Name: "Web Design", Slug: "web-design"})
	require.NoError(t, err)

	err = s.Update(ctx, "categories", id, 0, map[string]any{"name": "Web & UX Design"})
	require.NoError(t, err)

	var got models.Category
	require.NoError(t, s.GetOne(ctx, "categories", id, &got))
	require.Equal(t, "Web & UX Design", got.Name)
	// Untouched field survives, version advanced.
	require.Equal(t, "web-design", got.Slug)
	require.Equal(t, int64(1), got.Version)
}

func TestMemoryStoreUpdateStaleVersionConflicts(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Add(ctx, "categories", &models.Category{Name: "Web Design", Slug: "web-design"})
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, "categories", id, 0, map[string]any{"name": "First"}))
	err = s.Update(ctx, "categories", id, 0, map[string]any{"name": "Second"})
	require.ErrorIs(t, err, ErrConflict)

	var got models.Category
	require.NoError(t, s.GetOne(ctx, "categories", id, &got))
	require.Equal(t, "First", got.Name)
}

func TestMemoryStoreUpdateSkipsVersionCheck(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Add(ctx, "categories", &models.Category{Name: "Web Design", Slug: "web-design"})
	require.NoError(t, err)
	require.NoError(t, s.Update(ctx, "categories", id, NoVersion, map[string]any{"name": "Renamed"}))

	var got models.Category
	require.NoError(t, s.GetOne(ctx, "categories", id, &got))
	require.Equal(t, int64(0), got.Version)
}

func TestMemoryStoreRemove(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Add(ctx, "categories", &models.Category{Name: "Web Design", Slug: "web-design"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "categories", id))

	var got models.Category
	require.ErrorIs(t, s.GetOne(ctx, "categories", id, &got), ErrNotFound)
	require.ErrorIs(t, s.Remove(ctx, "categories", id), ErrNotFound)
}

func TestMemoryStoreUniqueField(t *testing.T) {
	s := NewMemoryStore().Unique("subscribers", "email")
	ctx := context.Background()

	_, err := s.Add(ctx, "subscribers", &models.Subscriber{Email: "reader@example.com"})
	require.NoError(t, err)

	_, err = s.Add(ctx, "subscribers", &models.Subscriber{Email: "reader@example.com"})
	require.ErrorIs(t, err, ErrDuplicate)

	n, err := s.Count(ctx, "subscribers", Query{})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestMemoryStoreUniqueFieldOnUpdate(t *testing.T) {
	s := NewMemoryStore().Unique("categories", "slug")
	ctx := context.Background()

	_, err := s.Add(ctx, "categories", &models.Category{Name: "Web", Slug: "web"})
	require.NoError(t, err)
	id, err := s.Add(ctx, "categories", &models.Category{Name: "Print", Slug: "print"})
	require.NoError(t, err)

	err = s.Update(ctx, "categories", id, 0, map[string]any{"slug": "web"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryStoreFindSortAndPaginate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third", "fourth"} {
		_, err := s.Add(ctx, "blog-posts", &models.BlogPost{
			Title:       title,
			Slug:        title,
			Published:   i%2 == 0,
			PublishedAt: base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	var published []models.BlogPost
	err := s.Find(ctx, "blog-posts", Query{
		Eq:       map[string]any{"published": true},
		SortBy:   "published_at",
		SortDesc: true,
	}, &published)
	require.NoError(t, err)
	require.Len(t, published, 2)
	require.Equal(t, "third", published[0].Title)
	require.Equal(t, "first", published[1].Title)

	var page []models.BlogPost
	err = s.Find(ctx, "blog-posts", Query{
		SortBy:   "published_at",
		Page:     2,
		PageSize: 3,
	}, &page)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "fourth", page[0].Title)

	n, err := s.Count(ctx, "blog-posts", Query{Eq: map[string]any{"published": true}})
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}
