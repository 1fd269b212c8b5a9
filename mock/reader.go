package mock

import (
	"context"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

var _ gcsadmin.FileReader = (*FileReader)(nil)

// FileReader is a mock implementation of gcsadmin.FileReader.
type FileReader struct {
	ListFolderFn func(ctx context.Context, folderID string) ([]*gcsadmin.File, error)
	ExportFn     func(ctx context.Context, fileID, mimeType string) ([]byte, error)
	DownloadFn   func(ctx context.Context, fileID string) ([]byte, error)
}

func (r *FileReader) ListFolder(ctx context.Context, folderID string) ([]*gcsadmin.File, error) {
	return r.ListFolderFn(ctx, folderID)
}

func (r *FileReader) Export(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	return r.ExportFn(ctx, fileID, mimeType)
}

func (r *FileReader) Download(ctx context.Context, fileID string) ([]byte, error) {
	return r.DownloadFn(ctx, fileID)
}
