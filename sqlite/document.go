package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// Compile-time interface verification.
var _ gcsadmin.DocumentService = (*DocumentService)(nil)

// DocumentService implements gcsadmin.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document record.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *gcsadmin.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ProcessedAt = time.Now().UTC()
	doc.ContentHash = gcsadmin.HashContent(doc.Body)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, file_id, name, title, body, content_hash, post_id, post_url, status, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.FileID, doc.Name, doc.Title, doc.Body, doc.ContentHash,
		doc.PostID, doc.PostURL, doc.Status, doc.ProcessedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*gcsadmin.Document, error) {
	return s.findOne(ctx, "id", id)
}

// FindDocumentByFileID retrieves the document for a drive file.
func (s *DocumentService) FindDocumentByFileID(ctx context.Context, fileID string) (*gcsadmin.Document, error) {
	return s.findOne(ctx, "file_id", fileID)
}

func (s *DocumentService) findOne(ctx context.Context, column, value string) (*gcsadmin.Document, error) {
	var doc gcsadmin.Document
	var processedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, file_id, name, title, body, content_hash, post_id, post_url, status, processed_at
		FROM documents
		WHERE `+column+` = ?
	`, value).Scan(&doc.ID, &doc.FileID, &doc.Name, &doc.Title, &doc.Body,
		&doc.ContentHash, &doc.PostID, &doc.PostURL, &doc.Status, &processedAt)

	if err == sql.ErrNoRows {
		return nil, gcsadmin.Errorf(gcsadmin.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.ProcessedAt, err = time.Parse(time.RFC3339, processedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse processed_at: %w", err)
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter, most recently
// processed first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter gcsadmin.DocumentFilter) ([]*gcsadmin.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, file_id, name, title, body, content_hash, post_id, post_url, status, processed_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.FileID != nil {
		query.WriteString(" AND file_id = ?")
		args = append(args, *filter.FileID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY processed_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*gcsadmin.Document
	for rows.Next() {
		var doc gcsadmin.Document
		var processedAt string

		if err := rows.Scan(&doc.ID, &doc.FileID, &doc.Name, &doc.Title, &doc.Body,
			&doc.ContentHash, &doc.PostID, &doc.PostURL, &doc.Status, &processedAt); err != nil {
			return nil, err
		}

		doc.ProcessedAt, err = time.Parse(time.RFC3339, processedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse processed_at: %w", err)
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// UpdateDocument updates an existing document record.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd gcsadmin.DocumentUpdate) (*gcsadmin.Document, error) {
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		doc.Title = *upd.Title
	}
	if upd.Body != nil {
		doc.Body = *upd.Body
		doc.ContentHash = gcsadmin.HashContent(doc.Body)
	} else if upd.ContentHash != nil {
		// Only allow explicit hash override if the body wasn't updated.
		doc.ContentHash = *upd.ContentHash
	}
	if upd.PostID != nil {
		doc.PostID = *upd.PostID
	}
	if upd.PostURL != nil {
		doc.PostURL = *upd.PostURL
	}
	if upd.Status != nil {
		doc.Status = *upd.Status
	}
	doc.ProcessedAt = time.Now().UTC()

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, body = ?, content_hash = ?, post_id = ?, post_url = ?, status = ?, processed_at = ?
		WHERE id = ?
	`, doc.Title, doc.Body, doc.ContentHash, doc.PostID, doc.PostURL, doc.Status,
		doc.ProcessedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document record.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return gcsadmin.Errorf(gcsadmin.ENOTFOUND, "document not found")
	}

	return nil
}
