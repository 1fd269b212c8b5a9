// Package drive provides a Google Drive implementation of
// gcsadmin.FileReader.
package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gcsadmin "github.com/squareinnov8/gcs-admin"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// listFields limits the file list response to the fields the pipeline
// needs.
const listFields = "nextPageToken, files(id, name, mimeType, modifiedTime)"

// Ensure Reader implements gcsadmin.FileReader at compile time.
var _ gcsadmin.FileReader = (*Reader)(nil)

// Reader lists and retrieves files from a Google Drive folder.
type Reader struct {
	svc *drive.Service
}

// NewReader creates a new Reader. Credentials are resolved by the
// client options (e.g. option.WithCredentialsFile) or application
// default credentials.
func NewReader(ctx context.Context, opts ...option.ClientOption) (*Reader, error) {
	opts = append([]option.ClientOption{option.WithScopes(drive.DriveReadonlyScope)}, opts...)
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Reader{svc: svc}, nil
}

// ListFolder returns the files directly inside the folder.
func (r *Reader) ListFolder(ctx context.Context, folderID string) ([]*gcsadmin.File, error) {
	if folderID == "" {
		return nil, gcsadmin.Errorf(gcsadmin.EINVALID, "folder ID required")
	}

	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)

	var files []*gcsadmin.File
	pageToken := ""
	for {
		call := r.svc.Files.List().
			Q(query).
			Fields(listFields).
			OrderBy("name").
			PageSize(100).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		list, err := call.Do()
		if err != nil {
			return nil, translateError(err, "folder %q", folderID)
		}

		for _, f := range list.Files {
			modified, _ := time.Parse(time.RFC3339, f.ModifiedTime)
			files = append(files, &gcsadmin.File{
				ID:           f.Id,
				Name:         f.Name,
				MimeType:     f.MimeType,
				ModifiedTime: modified,
			})
		}

		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}

	return files, nil
}

// Export retrieves a Google-native file converted to the given MIME type.
func (r *Reader) Export(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	resp, err := r.svc.Files.Export(fileID, mimeType).Context(ctx).Download()
	if err != nil {
		return nil, translateError(err, "file %q", fileID)
	}
	return readBody(resp)
}

// Download retrieves the raw bytes of a binary file.
func (r *Reader) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := r.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, translateError(err, "file %q", fileID)
	}
	return readBody(resp)
}

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read drive response: %w", err)
	}
	return data, nil
}

// translateError maps the API's 404 onto the domain ENOTFOUND code so
// callers can skip deleted files without string matching.
func translateError(err error, format string, args ...any) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return gcsadmin.Errorf(gcsadmin.ENOTFOUND, format+" not found", args...)
	}
	return err
}
