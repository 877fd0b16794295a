// Package cdn uploads images to the third-party image CDN. The CMS stores
// only the returned URL; the binary payload never touches the database.
package cdn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"atelier-cms/config"
)

// UploadResult is what the caller gets back after a successful upload.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Uploader is the outbound contract the upload handler depends on.
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader, folder string) (*UploadResult, error)
}

// Client posts multipart uploads to the configured CDN endpoint. A circuit
// breaker keeps a failing CDN from tying up admin requests: after repeated
// failures the breaker opens and uploads fail fast until the CDN recovers.
type Client struct {
	httpClient    *http.Client
	uploadURL     string
	apiKey        string
	uploadPreset  string
	defaultFolder string
	breaker       *gobreaker.CircuitBreaker
}

// NewClient builds a Client from config plus the CDN_API_KEY and
// CDN_UPLOAD_PRESET environment variables.
func NewClient(cfg config.CDNConfig) *Client {
	st := gobreaker.Settings{Name: "cdn-upload"}
	st.Interval = 60 * time.Second
	st.Timeout = 60 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= 3
	}

	return &Client{
		httpClient:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		uploadURL:     cfg.UploadURL,
		apiKey:        os.Getenv("CDN_API_KEY"),
		uploadPreset:  os.Getenv("CDN_UPLOAD_PRESET"),
		defaultFolder: cfg.DefaultFolder,
		breaker:       gobreaker.NewCircuitBreaker(st),
	}
}

func (c *Client) Upload(ctx context.Context, filename string, content io.Reader, folder string) (*UploadResult, error) {
	if folder == "" {
		folder = c.defaultFolder
	}
	publicID := uuid.NewString()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, err
	}
	w.WriteField("folder", folder)
	w.WriteField("public_id", publicID)
	if c.apiKey != "" {
		w.WriteField("api_key", c.apiKey)
	}
	if c.uploadPreset != "" {
		w.WriteField("upload_preset", c.uploadPreset)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	res, err := c.breaker.Execute(func() (any, error) {
		return c.post(ctx, w.FormDataContentType(), &body)
	})
	if err != nil {
		return nil, fmt.Errorf("cdn upload: %w", err)
	}
	return res.(*UploadResult), nil
}

func (c *Client) post(ctx context.Context, contentType string, body io.Reader) (*UploadResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("cdn returned status %d: %s", resp.StatusCode, snippet)
	}

	// Cloudinary-style response; secure_url preferred when present.
	var payload struct {
		URL       string `json:"url"`
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode cdn response: %w", err)
	}
	url := payload.SecureURL
	if url == "" {
		url = payload.URL
	}
	return &UploadResult{URL: url, PublicID: payload.PublicID}, nil
}
