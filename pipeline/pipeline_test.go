package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	gcsadmin "github.com/squareinnov8/gcs-admin"
	"github.com/squareinnov8/gcs-admin/bloom"
	"github.com/squareinnov8/gcs-admin/mock"
	"github.com/squareinnov8/gcs-admin/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryDocuments is an in-memory DocumentService for pipeline tests.
type memoryDocuments struct {
	mu   sync.Mutex
	docs map[string]*gcsadmin.Document // keyed by file ID
	next int
}

func newMemoryDocuments() *memoryDocuments {
	return &memoryDocuments{docs: make(map[string]*gcsadmin.Document)}
}

func (m *memoryDocuments) CreateDocument(ctx context.Context, doc *gcsadmin.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	doc.ID = string(rune('a' + m.next))
	doc.ContentHash = gcsadmin.HashContent(doc.Body)
	m.docs[doc.FileID] = doc
	return nil
}

func (m *memoryDocuments) FindDocumentByID(ctx context.Context, id string) (*gcsadmin.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, gcsadmin.Errorf(gcsadmin.ENOTFOUND, "document not found")
}

func (m *memoryDocuments) FindDocumentByFileID(ctx context.Context, fileID string) (*gcsadmin.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc, ok := m.docs[fileID]; ok {
		return doc, nil
	}
	return nil, gcsadmin.Errorf(gcsadmin.ENOTFOUND, "document not found")
}

func (m *memoryDocuments) FindDocuments(ctx context.Context, filter gcsadmin.DocumentFilter) ([]*gcsadmin.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var docs []*gcsadmin.Document
	for _, doc := range m.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *memoryDocuments) UpdateDocument(ctx context.Context, id string, upd gcsadmin.DocumentUpdate) (*gcsadmin.Document, error) {
	doc, err := m.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if upd.Title != nil {
		doc.Title = *upd.Title
	}
	if upd.Body != nil {
		doc.Body = *upd.Body
		doc.ContentHash = gcsadmin.HashContent(doc.Body)
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
	return doc, nil
}

func (m *memoryDocuments) DeleteDocument(ctx context.Context, id string) error {
	return gcsadmin.Errorf(gcsadmin.ENOTFOUND, "document not found")
}

func htmlReader(files []*gcsadmin.File) *mock.FileReader {
	return &mock.FileReader{
		ListFolderFn: func(ctx context.Context, folderID string) ([]*gcsadmin.File, error) {
			return files, nil
		},
		ExportFn: func(ctx context.Context, fileID, mimeType string) ([]byte, error) {
			return []byte("<h1>Doc " + fileID + "</h1><p>Body of " + fileID + ".</p>"), nil
		},
		DownloadFn: func(ctx context.Context, fileID string) ([]byte, error) {
			return []byte("# Doc " + fileID + "\n\nBody."), nil
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("publishes google docs with extracted titles", func(t *testing.T) {
		t.Parallel()

		files := []*gcsadmin.File{
			{ID: "f1", Name: "First", MimeType: gcsadmin.TypeGoogleDoc},
			{ID: "f2", Name: "Second", MimeType: gcsadmin.TypeGoogleDoc},
		}

		var mu sync.Mutex
		var published []*gcsadmin.Post
		docs := newMemoryDocuments()

		p := &pipeline.Pipeline{
			Reader:    htmlReader(files),
			Processor: &gcsadmin.Processor{},
			Publisher: &mock.Publisher{
				PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
					mu.Lock()
					defer mu.Unlock()
					published = append(published, post)
					return &gcsadmin.PostRef{ID: "p1", URL: "https://example.com/p/1"}, nil
				},
			},
			Documents: docs,
		}

		result, err := p.Run(context.Background(), "folder-1", nil)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Published)
		assert.Equal(t, 0, result.Failed)
		require.Len(t, published, 2)

		titles := []string{published[0].Title, published[1].Title}
		assert.ElementsMatch(t, []string{"Doc f1", "Doc f2"}, titles)
		for _, post := range published {
			assert.NotContains(t, post.Content, "<h1>", "title heading should be removed from the body")
			assert.Equal(t, "draft", post.Status)
		}

		stored, err := docs.FindDocumentByFileID(context.Background(), "f1")
		require.NoError(t, err)
		assert.Equal(t, gcsadmin.StatusPublished, stored.Status)
		assert.Equal(t, "p1", stored.PostID)
	})

	t.Run("skips unchanged documents", func(t *testing.T) {
		t.Parallel()

		files := []*gcsadmin.File{{ID: "f1", Name: "First", MimeType: gcsadmin.TypeGoogleDoc}}
		docs := newMemoryDocuments()

		publishCount := 0
		p := &pipeline.Pipeline{
			Reader:    htmlReader(files),
			Processor: &gcsadmin.Processor{},
			Publisher: &mock.Publisher{
				PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
					publishCount++
					return &gcsadmin.PostRef{ID: "p1", URL: "https://example.com/p/1"}, nil
				},
			},
			Documents: docs,
		}

		// First run publishes, second run sees an identical hash.
		result, err := p.Run(context.Background(), "folder-1", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Published)

		result, err = p.Run(context.Background(), "folder-1", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Published)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 1, publishCount)
	})

	t.Run("skips documents that normalize to nothing", func(t *testing.T) {
		t.Parallel()

		files := []*gcsadmin.File{{ID: "f1", Name: "Empty", MimeType: gcsadmin.TypeGoogleDoc}}
		reader := htmlReader(files)
		reader.ExportFn = func(ctx context.Context, fileID, mimeType string) ([]byte, error) {
			return []byte("<p>&nbsp;</p>"), nil
		}

		p := &pipeline.Pipeline{
			Reader:    reader,
			Processor: &gcsadmin.Processor{},
			Publisher: &mock.Publisher{
				PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
					t.Fatal("empty document must not publish")
					return nil, nil
				},
			},
			Documents: newMemoryDocuments(),
		}

		result, err := p.Run(context.Background(), "folder-1", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("counts failures and keeps going", func(t *testing.T) {
		t.Parallel()

		files := []*gcsadmin.File{
			{ID: "f1", Name: "Good", MimeType: gcsadmin.TypeGoogleDoc},
			{ID: "f2", Name: "Bad", MimeType: gcsadmin.TypeGoogleDoc},
		}
		reader := htmlReader(files)
		reader.ExportFn = func(ctx context.Context, fileID, mimeType string) ([]byte, error) {
			if fileID == "f2" {
				return nil, errors.New("export failed")
			}
			return []byte("<h1>Good</h1><p>Body.</p>"), nil
		}

		p := &pipeline.Pipeline{
			Reader:    reader,
			Processor: &gcsadmin.Processor{},
			Publisher: &mock.Publisher{
				PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
					return &gcsadmin.PostRef{ID: "p1", URL: "https://example.com/p/1"}, nil
				},
			},
			Documents: newMemoryDocuments(),
		}

		result, err := p.Run(context.Background(), "folder-1", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Published)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("attaches describer metadata to posts", func(t *testing.T) {
		t.Parallel()

		files := []*gcsadmin.File{{ID: "f1", Name: "First", MimeType: gcsadmin.TypeGoogleDoc}}

		var got *gcsadmin.Post
		p := &pipeline.Pipeline{
			Reader:    htmlReader(files),
			Processor: &gcsadmin.Processor{},
			Describer: &mock.Describer{
				DescribeFn: func(ctx context.Context, title, body string) (*gcsadmin.Metadata, error) {
					return &gcsadmin.Metadata{
						Excerpt: "A short summary.",
						Tags:    []string{"news"},
					}, nil
				},
			},
			Publisher: &mock.Publisher{
				PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
					got = post
					return &gcsadmin.PostRef{ID: "p1", URL: "https://example.com/p/1"}, nil
				},
			},
			Documents: newMemoryDocuments(),
		}

		_, err := p.Run(context.Background(), "folder-1", nil)
		require.NoError(t, err)

		require.NotNil(t, got)
		assert.Equal(t, "A short summary.", got.Excerpt)
		assert.Equal(t, []string{"news"}, got.Tags)
	})

	t.Run("publishes without metadata when describer fails", func(t *testing.T) {
		t.Parallel()

		files := []*gcsadmin.File{{ID: "f1", Name: "First", MimeType: gcsadmin.TypeGoogleDoc}}

		var got *gcsadmin.Post
		p := &pipeline.Pipeline{
			Reader:    htmlReader(files),
			Processor: &gcsadmin.Processor{},
			Describer: &mock.Describer{
				DescribeFn: func(ctx context.Context, title, body string) (*gcsadmin.Metadata, error) {
					return nil, errors.New("model unavailable")
				},
			},
			Publisher: &mock.Publisher{
				PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
					got = post
					return &gcsadmin.PostRef{ID: "p1", URL: "https://example.com/p/1"}, nil
				},
			},
			Documents: newMemoryDocuments(),
		}

		result, err := p.Run(context.Background(), "folder-1", nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Published)
		require.NotNil(t, got)
		assert.Empty(t, got.Excerpt)
	})

	t.Run("updates tracker rows for published files", func(t *testing.T) {
		t.Parallel()

		files := []*gcsadmin.File{{ID: "f1", Name: "First", MimeType: gcsadmin.TypeGoogleDoc}}

		var updated *gcsadmin.TrackerEntry
		p := &pipeline.Pipeline{
			Reader:    htmlReader(files),
			Processor: &gcsadmin.Processor{},
			Tracker: &mock.Tracker{
				ListEntriesFn: func(ctx context.Context) ([]*gcsadmin.TrackerEntry, error) {
					return []*gcsadmin.TrackerEntry{{Row: 2, FileID: "f1", Name: "First"}}, nil
				},
				UpdateEntryFn: func(ctx context.Context, entry *gcsadmin.TrackerEntry) error {
					updated = entry
					return nil
				},
			},
			Publisher: &mock.Publisher{
				PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
					return &gcsadmin.PostRef{ID: "p1", URL: "https://example.com/p/1"}, nil
				},
			},
			Documents: newMemoryDocuments(),
		}

		_, err := p.Run(context.Background(), "folder-1", nil)
		require.NoError(t, err)

		require.NotNil(t, updated)
		assert.Equal(t, 2, updated.Row)
		assert.Equal(t, gcsadmin.StatusPublished, updated.Status)
		assert.Equal(t, "https://example.com/p/1", updated.PostURL)
	})

	t.Run("deduplicates file IDs with the seen filter", func(t *testing.T) {
		t.Parallel()

		files := []*gcsadmin.File{
			{ID: "f1", Name: "First", MimeType: gcsadmin.TypeGoogleDoc},
			{ID: "f1", Name: "First (shortcut)", MimeType: gcsadmin.TypeGoogleDoc},
		}

		publishCount := 0
		p := &pipeline.Pipeline{
			Reader:    htmlReader(files),
			Processor: &gcsadmin.Processor{},
			Seen:      bloom.NewFilter(100, 0.01),
			Publisher: &mock.Publisher{
				PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
					publishCount++
					return &gcsadmin.PostRef{ID: "p1", URL: "https://example.com/p/1"}, nil
				},
			},
			Documents: newMemoryDocuments(),
		}

		result, err := p.Run(context.Background(), "folder-1", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Published)
		assert.Equal(t, 1, publishCount)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		files := []*gcsadmin.File{{ID: "f1", Name: "First", MimeType: gcsadmin.TypeGoogleDoc}}

		var events []pipeline.ProgressEvent
		p := &pipeline.Pipeline{
			Reader:    htmlReader(files),
			Processor: &gcsadmin.Processor{},
			Publisher: &mock.Publisher{
				PublishFn: func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
					return &gcsadmin.PostRef{ID: "p1", URL: "https://example.com/p/1"}, nil
				},
			},
			Documents: newMemoryDocuments(),
		}

		_, err := p.Run(context.Background(), "folder-1", func(event pipeline.ProgressEvent) {
			events = append(events, event)
		})
		require.NoError(t, err)

		require.Len(t, events, 3)
		assert.Equal(t, pipeline.ProgressStarted, events[0].Type)
		assert.Equal(t, 1, events[0].Total)
		assert.Equal(t, pipeline.ProgressPublished, events[1].Type)
		assert.Equal(t, "https://example.com/p/1", events[1].PostURL)
		assert.Equal(t, pipeline.ProgressFinished, events[2].Type)
	})

	t.Run("returns error when folder listing fails", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Reader: &mock.FileReader{
				ListFolderFn: func(ctx context.Context, folderID string) ([]*gcsadmin.File, error) {
					return nil, errors.New("drive unavailable")
				},
			},
			Processor: &gcsadmin.Processor{},
			Publisher: &mock.Publisher{},
			Documents: newMemoryDocuments(),
		}

		_, err := p.Run(context.Background(), "folder-1", nil)
		require.Error(t, err)
	})
}
