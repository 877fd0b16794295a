package services

import (
	"context"
	"errors"
	"testing"

	"atelier-cms/repositories"
	"atelier-cms/schema"
	"atelier-cms/store"
)

func newCategoryService() *CategoryService {
	s := store.NewMemoryStore().Unique("categories", "slug")
	return NewCategoryService(repositories.NewCategoryRepository(s))
}

func TestCategoryCreateGeneratesSlug(t *testing.T) {
	svc := newCategoryService()

	d, err := svc.Create(context.Background(), schema.CategoryInput{Name: "Web Design"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Slug != "web-design" {
		t.Fatalf("expected slug web-design, got %q", d.Slug)
	}
	if d.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestCategoryCreateDuplicateSlug(t *testing.T) {
	svc := newCategoryService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, schema.CategoryInput{Name: "Web Design"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, schema.CategoryInput{Name: "Web  Design"})
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCategoryUpdateStaleVersion(t *testing.T) {
	svc := newCategoryService()
	ctx := context.Background()

	d, err := svc.Create(ctx, schema.CategoryInput{Name: "Web Design"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, d.ID, 0, schema.CategoryInput{Name: "UX Design"}); err != nil {
		t.Fatalf("first update: %v", err)
	}
	_, err = svc.Update(ctx, d.ID, 0, schema.CategoryInput{Name: "Product Design"})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCategoryDeleteMissing(t *testing.T) {
	svc := newCategoryService()
	err := svc.Delete(context.Background(), "ffffffffffffffffffffffff")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryValidationErrors(t *testing.T) {
	svc := newCategoryService()
	_, err := svc.Create(context.Background(), schema.CategoryInput{})
	var errs schema.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected schema.Errors, got %v", err)
	}
	if errs[0].Field != "name" {
		t.Fatalf("expected error on name, got %q", errs[0].Field)
	}
}
