package gcsadmin

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Declared content types the format dispatcher recognizes. Dispatch is
// an exact, case-sensitive match; anything else falls back to the .md
// filename extension or fails with EUNSUPPORTED.
const (
	TypeGoogleDoc = "application/vnd.google-apps.document"
	TypeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypeDoc       = "application/msword"
	TypePDF       = "application/pdf"
	TypeMarkdown  = "text/markdown"
	TypeMarkdownX = "text/x-markdown"
	TypePlain     = "text/plain"
)

// Document statuses recorded in the store after a pipeline run.
const (
	StatusPublished = "published"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// RawDocument is an unprocessed file pulled from the drive folder.
// It is never mutated; the dispatcher produces a new string from it.
type RawDocument struct {
	// Content is the raw bytes of the file or export.
	Content []byte

	// ContentType is the caller-declared content type identifying the
	// parsing strategy, independent of the file extension.
	ContentType string

	// Name is the display name of the file, used for extension
	// fallback and as the default post title.
	Name string
}

// Document represents a drive document that has been processed and,
// usually, published to the CMS.
type Document struct {
	ID          string    `json:"id"`
	FileID      string    `json:"fileId"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	ContentHash string    `json:"contentHash"`
	PostID      string    `json:"postId"`
	PostURL     string    `json:"postUrl"`
	Status      string    `json:"status"`
	ProcessedAt time.Time `json:"processedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.FileID == "" {
		return Errorf(EINVALID, "document file ID required")
	}
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	return nil
}

// HashContent computes the xxHash of content and returns it as a hex
// string. Used for change detection between pipeline runs.
func HashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing processed documents.
// It replaces the ephemeral in-memory map the publishing workflow would
// otherwise keep, so runs survive process restarts.
type DocumentService interface {
	// CreateDocument creates a new document record.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocumentByFileID retrieves the document for a drive file.
	// Returns ENOTFOUND if no record exists for the file.
	FindDocumentByFileID(ctx context.Context, fileID string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocument updates an existing document record.
	// Returns ENOTFOUND if the document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument permanently removes a document record.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID     *string `json:"id"`
	FileID *string `json:"fileId"`
	Status *string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentUpdate represents a set of fields to update on a document.
// Nil fields are left unchanged.
type DocumentUpdate struct {
	Title       *string `json:"title"`
	Body        *string `json:"body"`
	ContentHash *string `json:"contentHash"`
	PostID      *string `json:"postId"`
	PostURL     *string `json:"postUrl"`
	Status      *string `json:"status"`
}
