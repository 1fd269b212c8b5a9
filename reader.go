package gcsadmin

import (
	"context"
	"time"
)

// File represents a file listed from the drive folder.
type File struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MimeType     string    `json:"mimeType"`
	ModifiedTime time.Time `json:"modifiedTime"`
}

// FileReader lists and retrieves files from a cloud drive folder.
type FileReader interface {
	// ListFolder returns the files directly inside the folder.
	ListFolder(ctx context.Context, folderID string) ([]*File, error)

	// Export retrieves a Google-native file converted to the given
	// MIME type (e.g. a Google Doc exported as text/html).
	// Returns ENOTFOUND if the file does not exist.
	Export(ctx context.Context, fileID, mimeType string) ([]byte, error)

	// Download retrieves the raw bytes of a binary file.
	// Returns ENOTFOUND if the file does not exist.
	Download(ctx context.Context, fileID string) ([]byte, error)
}
