// Package http provides an HTTP-based implementation of gcsadmin.Publisher
// for creating posts through the CMS REST API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// DefaultPublishTimeout is the default timeout for CMS requests.
const DefaultPublishTimeout = 30 * time.Second

// Ensure Publisher implements gcsadmin.Publisher at compile time.
var _ gcsadmin.Publisher = (*Publisher)(nil)

// Publisher creates posts through the CMS REST API. Requests carry a
// bearer token and a JSON body; the CMS responds with the created
// post's ID and public URL.
type Publisher struct {
	client  *http.Client
	baseURL string
	token   string
	timeout time.Duration
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithTimeout sets the timeout for CMS requests.
// Defaults to DefaultPublishTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		p.timeout = d
	}
}

// WithClient sets the underlying HTTP client. The client's timeout is
// left as configured; WithTimeout has no effect when a client is set.
func WithClient(c *http.Client) Option {
	return func(p *Publisher) {
		p.client = c
	}
}

// NewPublisher creates a new CMS Publisher. baseURL is the API root,
// e.g. "https://cms.example.com/api".
func NewPublisher(baseURL, token string, opts ...Option) (*Publisher, error) {
	if baseURL == "" {
		return nil, gcsadmin.Errorf(gcsadmin.EINVALID, "CMS base URL required")
	}

	p := &Publisher{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		timeout: DefaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.client == nil {
		p.client = &http.Client{
			Timeout: p.timeout,
		}
	}

	return p, nil
}

type postRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Status     string   `json:"status"`
	Tags       []string `json:"tags,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

type postResponse struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Link string `json:"link"` // some CMS versions use "link" instead of "url"
}

// Publish creates a post and returns the CMS reference for it.
func (p *Publisher) Publish(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
	if err := post.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(postRequest{
		Title:      post.Title,
		Content:    post.Content,
		Excerpt:    post.Excerpt,
		Status:     post.Status,
		Tags:       post.Tags,
		Categories: post.Categories,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/posts", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, translateStatus(resp)
	}

	var created postResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, gcsadmin.Errorf(gcsadmin.EINTERNAL, "failed to decode CMS response: %v", err)
	}
	if created.ID == "" {
		return nil, gcsadmin.Errorf(gcsadmin.EINTERNAL, "CMS response missing post ID")
	}

	url := created.URL
	if url == "" {
		url = created.Link
	}

	return &gcsadmin.PostRef{ID: created.ID, URL: url}, nil
}

// translateStatus maps CMS error responses to domain errors. The
// response body is included when short enough to be useful.
func translateStatus(resp *http.Response) error {
	detail := ""
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 512)); err == nil && len(body) > 0 {
		detail = ": " + strings.TrimSpace(string(body))
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return gcsadmin.Errorf(gcsadmin.EINVALID, "CMS rejected credentials (HTTP %d)%s", resp.StatusCode, detail)
	case http.StatusNotFound:
		return gcsadmin.Errorf(gcsadmin.ENOTFOUND, "CMS endpoint not found%s", detail)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return gcsadmin.Errorf(gcsadmin.EINVALID, "CMS rejected post (HTTP %d)%s", resp.StatusCode, detail)
	default:
		return fmt.Errorf("CMS returned HTTP %d%s", resp.StatusCode, detail)
	}
}
