package main_test

import (
	"bytes"
	"context"
	"testing"

	gcsadmin "github.com/squareinnov8/gcs-admin"
	main "github.com/squareinnov8/gcs-admin/cmd/gcsadmin"
	"github.com/squareinnov8/gcs-admin/mock"
	"github.com/squareinnov8/gcs-admin/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syncPipeline() *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Reader: &mock.FileReader{
			ListFolderFn: func(ctx context.Context, folderID string) ([]*gcsadmin.File, error) {
				return []*gcsadmin.File{
					{ID: "f1", Name: "First", MimeType: gcsadmin.TypeGoogleDoc},
				}, nil
			},
			ExportFn: func(ctx context.Context, fileID, mimeType string) ([]byte, error) {
				return []byte("<h1>First</h1><p>Body.</p>"), nil
			},
		},
		Processor: &gcsadmin.Processor{},
		Publisher: &mock.Publisher{
			PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
				return &gcsadmin.PostRef{ID: "p1", URL: "https://example.com/p/1"}, nil
			},
		},
		Documents: &mock.DocumentService{
			FindDocumentByFileIDFn: func(ctx context.Context, fileID string) (*gcsadmin.Document, error) {
				return nil, gcsadmin.Errorf(gcsadmin.ENOTFOUND, "document not found")
			},
			CreateDocumentFn: func(ctx context.Context, doc *gcsadmin.Document) error {
				return nil
			},
		},
	}
}

func TestSyncCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("publishes folder and prints summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Pipeline: syncPipeline(),
		}

		cmd := &main.SyncCmd{Folder: "folder-1"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Found 1 files")
		assert.Contains(t, output, "First -> https://example.com/p/1")
		assert.Contains(t, output, "Published 1, skipped 0, failed 0")
	})

	t.Run("errors when pipeline is not configured", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.SyncCmd{Folder: "folder-1"}
		require.Error(t, cmd.Run(deps))
	})
}
