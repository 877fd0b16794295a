package schema

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Web Design", "web-design"},
		{"  Branding & Identity  ", "branding-identity"},
		{"UPPER case", "upper-case"},
		{"already-a-slug", "already-a-slug"},
		{"Trailing!!", "trailing"},
		{"multi   spaces", "multi-spaces"},
		{"2024 Review", "2024-review"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.name); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCategoryInputGeneratesSlug(t *testing.T) {
	in := CategoryInput{Name: "Web Design"}
	if errs := in.Validate(); errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if in.Slug != "web-design" {
		t.Fatalf("expected generated slug web-design, got %q", in.Slug)
	}
}

func TestCategoryInputRejectsBadSlug(t *testing.T) {
	in := CategoryInput{Name: "Web Design", Slug: "Web Design!"}
	errs := in.Validate()
	if errs == nil {
		t.Fatal("expected slug validation error")
	}
	if errs[0].Field != "slug" {
		t.Fatalf("expected error on slug, got %q", errs[0].Field)
	}
}

func TestCategoryInputRequiresName(t *testing.T) {
	in := CategoryInput{}
	errs := in.Validate()
	if errs == nil {
		t.Fatal("expected name validation error")
	}
	if errs[0].Field != "name" {
		t.Fatalf("expected error on name, got %q", errs[0].Field)
	}
}

func TestSubscriberInputNormalizesEmail(t *testing.T) {
	in := SubscriberInput{Email: "  Reader@Example.COM "}
	if errs := in.Validate(); errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if in.Email != "reader@example.com" {
		t.Fatalf("expected lowercased email, got %q", in.Email)
	}
}

func TestSubscriberInputRejectsBadEmail(t *testing.T) {
	in := SubscriberInput{Email: "not-an-email"}
	if errs := in.Validate(); errs == nil {
		t.Fatal("expected email validation error")
	}
}

func TestContactMessageInputFieldErrors(t *testing.T) {
	in := ContactMessageInput{Name: "A", Email: "nope", Message: "hi"}
	errs := in.Validate()
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"name", "email", "subject", "message"} {
		if !fields[want] {
			t.Fatalf("expected error on %s, got %v", want, errs)
		}
	}
}

func TestBlogPostInputSlugAndCoverImage(t *testing.T) {
	in := BlogPostInput{
		Title:      "Launching Our New Site",
		Content:    "body",
		AuthorName: "Jess",
		CoverImage: "not a url",
	}
	errs := in.Validate()
	if errs == nil {
		t.Fatal("expected cover_image validation error")
	}
	if errs[0].Field != "cover_image" {
		t.Fatalf("expected error on cover_image, got %q", errs[0].Field)
	}

	in.CoverImage = "https://cdn.example.com/cover.jpg"
	if errs := in.Validate(); errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if in.Slug != "launching-our-new-site" {
		t.Fatalf("expected generated slug, got %q", in.Slug)
	}
}

func TestBlogPostInputPublishedAtDefaulting(t *testing.T) {
	in := BlogPostInput{
		Title:      "Hello",
		Content:    "body",
		AuthorName: "Jess",
		Published:  true,
	}
	if errs := in.Validate(); errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if in.PublishedAt.IsZero() {
		t.Fatal("expected published_at to default for published posts")
	}
}

func TestBlogPostInputRejectsBadCategoryID(t *testing.T) {
	in := BlogPostInput{
		Title:      "Hello",
		Content:    "body",
		AuthorName: "Jess",
		CategoryID: "zz",
	}
	if errs := in.Validate(); errs == nil {
		t.Fatal("expected category_id validation error")
	}
}
