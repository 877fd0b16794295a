package cdn

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sony/gobreaker"

	"atelier-cms/config"
)

func testClient(uploadURL string) *Client {
	return NewClient(config.CDNConfig{
		UploadURL:      uploadURL,
		DefaultFolder:  "cms",
		TimeoutSeconds: 5,
	})
}

func TestUploadSuccess(t *testing.T) {
	t.Setenv("CDN_API_KEY", "key123")
	t.Setenv("CDN_UPLOAD_PRESET", "unsigned")

	var gotFolder, gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotFolder = r.FormValue("folder")
		gotAPIKey = r.FormValue("api_key")
		if _, hdr, err := r.FormFile("file"); err != nil || hdr.Filename != "cover.jpg" {
			t.Errorf("missing file part: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"url":"http://cdn/img.jpg","secure_url":"https://cdn/img.jpg","public_id":"abc"}`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	res, err := c.Upload(context.Background(), "cover.jpg", strings.NewReader("jpegbytes"), "")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if res.URL != "https://cdn/img.jpg" {
		t.Fatalf("expected secure url preferred, got %q", res.URL)
	}
	if res.PublicID != "abc" {
		t.Fatalf("unexpected public_id %q", res.PublicID)
	}
	if gotFolder != "cms" {
		t.Fatalf("expected default folder, got %q", gotFolder)
	}
	if gotAPIKey != "key123" {
		t.Fatalf("expected api key forwarded, got %q", gotAPIKey)
	}
}

func TestUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Upload(context.Background(), "cover.jpg", strings.NewReader("x"), "blog")
	if err == nil {
		t.Fatal("expected error for 5xx response")
	}
}

func TestUploadBreakerOpensAfterRepeatedFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := c.Upload(ctx, "cover.jpg", strings.NewReader("x"), ""); err == nil {
			t.Fatalf("upload %d: expected failure", i)
		}
	}

	_, err := c.Upload(ctx, "cover.jpg", strings.NewReader("x"), "")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if hits != 3 {
		t.Fatalf("expected 3 upstream hits before the breaker opened, got %d", hits)
	}
}

func TestUploadAssignsPublicIDPerUpload(t *testing.T) {
	seen := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		seen[r.FormValue("public_id")] = true
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"secure_url":"https://cdn/img.jpg","public_id":"ignored"}`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := c.Upload(ctx, "a.png", strings.NewReader("x"), "blog"); err != nil {
			t.Fatalf("upload %d: %v", i, err)
		}
	}
	if len(seen) != 2 {
		t.Fatalf("expected distinct public ids per upload, got %v", seen)
	}
}
