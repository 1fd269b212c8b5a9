package mock

import (
	"context"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

var _ gcsadmin.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of gcsadmin.DocumentService.
type DocumentService struct {
	CreateDocumentFn       func(ctx context.Context, doc *gcsadmin.Document) error
	FindDocumentByIDFn     func(ctx context.Context, id string) (*gcsadmin.Document, error)
	FindDocumentByFileIDFn func(ctx context.Context, fileID string) (*gcsadmin.Document, error)
	FindDocumentsFn        func(ctx context.Context, filter gcsadmin.DocumentFilter) ([]*gcsadmin.Document, error)
	UpdateDocumentFn       func(ctx context.Context, id string, upd gcsadmin.DocumentUpdate) (*gcsadmin.Document, error)
	DeleteDocumentFn       func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *gcsadmin.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*gcsadmin.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocumentByFileID(ctx context.Context, fileID string) (*gcsadmin.Document, error) {
	return s.FindDocumentByFileIDFn(ctx, fileID)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter gcsadmin.DocumentFilter) ([]*gcsadmin.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd gcsadmin.DocumentUpdate) (*gcsadmin.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

var _ gcsadmin.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of gcsadmin.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *gcsadmin.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *gcsadmin.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
