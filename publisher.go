package gcsadmin

import "context"

// Post is the payload sent to the CMS.
type Post struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	Status     string   `json:"status"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

// Validate returns an error if the post cannot be published.
func (p *Post) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "post title required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "post content required")
	}
	return nil
}

// PostRef identifies a post created in the CMS.
type PostRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Publisher publishes posts to the content management system.
type Publisher interface {
	// Publish creates a post and returns its reference.
	// Failures are not retried at this layer.
	Publish(ctx context.Context, post *Post) (*PostRef, error)
}
