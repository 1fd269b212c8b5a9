package gcsadmin

import "context"

// Metadata holds LLM-derived publishing metadata for a document.
type Metadata struct {
	Excerpt    string   `json:"excerpt"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

// Describer derives publishing metadata from document content.
type Describer interface {
	// Describe returns suggested metadata for the document.
	// The body is the cleaned post content, not the raw export.
	Describe(ctx context.Context, title, body string) (*Metadata, error)
}
