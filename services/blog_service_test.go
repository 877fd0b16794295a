package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier-cms/repositories"
	"atelier-cms/schema"
	"atelier-cms/store"
)

func newBlogFixture() (*BlogService, *CategoryService) {
	s := store.NewMemoryStore().
		Unique("categories", "slug").
		Unique("blog-posts", "slug")
	categories := repositories.NewCategoryRepository(s)
	blog := NewBlogService(repositories.NewBlogPostRepository(s), categories)
	return blog, NewCategoryService(categories)
}

func TestBlogCreateRejectsMissingCategory(t *testing.T) {
	blog, _ := newBlogFixture()

	_, err := blog.Create(context.Background(), schema.BlogPostInput{
		Title:      "Hello",
		Content:    "body",
		AuthorName: "Jess",
		CategoryID: "ffffffffffffffffffffffff",
	})
	var errs schema.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected schema.Errors, got %v", err)
	}
	if errs[0].Field != "category_id" {
		t.Fatalf("expected error on category_id, got %q", errs[0].Field)
	}
}

func TestBlogCategoryNameResolvedOnRead(t *testing.T) {
	blog, cats := newBlogFixture()
	ctx := context.Background()

	cat, err := cats.Create(ctx, schema.CategoryInput{Name: "Design"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	post, err := blog.Create(ctx, schema.BlogPostInput{
		Title:      "Hello",
		Content:    "body",
		AuthorName: "Jess",
		Published:  true,
		CategoryID: cat.ID,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.CategoryName != "Design" {
		t.Fatalf("expected resolved category name, got %q", post.CategoryName)
	}
}

func TestBlogDanglingCategoryReadsEmpty(t *testing.T) {
	blog, cats := newBlogFixture()
	ctx := context.Background()

	cat, err := cats.Create(ctx, schema.CategoryInput{Name: "Design"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	post, err := blog.Create(ctx, schema.BlogPostInput{
		Title:      "Hello",
		Content:    "body",
		AuthorName: "Jess",
		Published:  true,
		CategoryID: cat.ID,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	// Deleting the category does not cascade; the post keeps the id but the
	// name resolves empty.
	if err := cats.Delete(ctx, cat.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	got, err := blog.GetPublishedBySlug(ctx, post.Slug)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got.CategoryID != cat.ID {
		t.Fatalf("expected dangling category_id to survive, got %q", got.CategoryID)
	}
	if got.CategoryName != "" {
		t.Fatalf("expected empty category name, got %q", got.CategoryName)
	}
}

func TestBlogListPublishedNewestFirst(t *testing.T) {
	blog, _ := newBlogFixture()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		_, err := blog.Create(ctx, schema.BlogPostInput{
			Title:       title,
			Content:     "body",
			AuthorName:  "Jess",
			Published:   true,
			PublishedAt: base.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}
	if _, err := blog.Create(ctx, schema.BlogPostInput{
		Title:      "draft",
		Content:    "body",
		AuthorName: "Jess",
	}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	page, err := blog.ListPublished(ctx, ListPostsInput{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("expected total 3, got %d", page.Total)
	}
	if len(page.Data) != 3 || page.Data[0].Title != "newest" || page.Data[2].Title != "oldest" {
		t.Fatalf("unexpected ordering: %+v", page.Data)
	}
}

func TestBlogListPublishedUnknownCategorySlug(t *testing.T) {
	blog, _ := newBlogFixture()

	page, err := blog.ListPublished(context.Background(), ListPostsInput{
		Page: 1, PageSize: 10, CategorySlug: "no-such-category",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Data) != 0 || page.Total != 0 {
		t.Fatalf("expected empty page, got %+v", page)
	}
}

func TestBlogDraftNotReadableBySlug(t *testing.T) {
	blog, _ := newBlogFixture()
	ctx := context.Background()

	if _, err := blog.Create(ctx, schema.BlogPostInput{
		Title:      "Secret Draft",
		Content:    "body",
		AuthorName: "Jess",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := blog.GetPublishedBySlug(ctx, "secret-draft")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for draft, got %v", err)
	}
}
