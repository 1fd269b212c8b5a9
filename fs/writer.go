// Package fs provides file-based archiving of published documents.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// Slugify converts a document name to a filesystem-safe slug.
// Example: "Launch Notes: Q3!" → "launch-notes-q3"
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *gcsadmin.Document, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(doc.Title)
	b.WriteString("\nfile_id: ")
	b.WriteString(doc.FileID)
	if doc.PostURL != "" {
		b.WriteString("\npost_url: ")
		b.WriteString(doc.PostURL)
	}
	b.WriteString("\npublished: ")
	b.WriteString(doc.ProcessedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// Ensure Writer implements gcsadmin.DocumentWriter at compile time.
var _ gcsadmin.DocumentWriter = (*Writer)(nil)

// Writer archives published documents as Markdown files in a directory,
// one file per document, named after the document's slug.
type Writer struct {
	baseDir string
	conv    gcsadmin.MarkdownConverter
}

// NewWriter creates a new Writer that writes to the given base
// directory. conv converts each document's HTML body to Markdown; if
// nil, the body is archived as-is.
func NewWriter(baseDir string, conv gcsadmin.MarkdownConverter) *Writer {
	return &Writer{baseDir: baseDir, conv: conv}
}

// CreateDocument writes a document to disk as a markdown file.
func (w *Writer) CreateDocument(ctx context.Context, doc *gcsadmin.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	body := doc.Body
	if w.conv != nil && strings.TrimSpace(body) != "" {
		md, err := w.conv.Convert(body)
		if err != nil {
			return err
		}
		body = md
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, Slugify(doc.Name)+".md")
	return os.WriteFile(fullPath, []byte(FormatDocument(doc, body)), 0644)
}
