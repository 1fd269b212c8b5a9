// Package pipeline orchestrates a publishing run: it lists the drive
// folder, processes each document into clean markup, derives metadata,
// publishes to the CMS, and records the outcome in the store and the
// tracking spreadsheet.
package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"

	gcsadmin "github.com/squareinnov8/gcs-admin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// SeenFilter reports whether a file ID was already encountered during
// a run. Shortcuts can surface the same file more than once in a
// folder listing.
type SeenFilter interface {
	Add(fileID string)
	Test(fileID string) bool
}

// Pipeline coordinates a publishing run over a drive folder.
type Pipeline struct {
	Reader    gcsadmin.FileReader
	Processor gcsadmin.DocumentProcessor
	Publisher gcsadmin.Publisher
	Documents gcsadmin.DocumentService

	// Tracker, if set, receives a status update per handled file.
	Tracker gcsadmin.Tracker

	// Describer, if set, derives excerpt/tags/categories for each post.
	// Describer failures are tolerated; the post publishes without
	// metadata.
	Describer gcsadmin.Describer

	// Archive, if set, receives a copy of every published document.
	Archive gcsadmin.DocumentWriter

	// Limiter throttles drive fetches across workers. Optional.
	Limiter *rate.Limiter

	// Seen deduplicates file IDs within a run. Optional.
	Seen SeenFilter

	// Concurrency bounds the number of files fetched and processed at
	// once. Defaults to 4.
	Concurrency int

	// PostStatus is the CMS status new posts are created with.
	// Defaults to "draft".
	PostStatus string
}

// Result holds the outcome of a publishing run.
type Result struct {
	Published int
	Skipped   int
	Failed    int
}

// ProgressEvent reports progress during a publishing run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	PostURL   string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressPublished
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of fetching and processing one file.
type fileResult struct {
	position int
	file     *gcsadmin.File
	title    string
	body     string
	hash     string
	err      error
}

// Run processes every file in the folder. The progress callback, if
// provided, receives events as the run proceeds.
func (p *Pipeline) Run(ctx context.Context, folderID string, progress ProgressFunc) (*Result, error) {
	files, err := p.Reader.ListFolder(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("folder listing: %w", err)
	}

	// Shortcuts can list the same file twice; keep the first.
	if p.Seen != nil {
		deduped := files[:0]
		for _, f := range files {
			if p.Seen.Test(f.ID) {
				continue
			}
			p.Seen.Add(f.ID)
			deduped = append(deduped, f)
		}
		files = deduped
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	// Tracker rows are read once up front and matched by file ID.
	var entries map[string]*gcsadmin.TrackerEntry
	if p.Tracker != nil {
		listed, err := p.Tracker.ListEntries(ctx)
		if err != nil {
			return nil, fmt.Errorf("tracker listing: %w", err)
		}
		entries = make(map[string]*gcsadmin.TrackerEntry, len(listed))
		for _, e := range listed {
			entries[e.FileID] = e
		}
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan fileResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, file := range files {
			i, file := i, file
			g.Go(func() error {
				resultCh <- p.processFile(gctx, i, file)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Publishing and bookkeeping run in the collector so the CMS and
	// the store see one document at a time.
	var result Result
	for fr := range resultCh {
		completed.Add(1)
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			Name:      fr.file.Name,
		}

		status, postURL, err := p.record(ctx, fr, entries)
		switch {
		case err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = err
		case status == gcsadmin.StatusSkipped:
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			result.Published++
			event.Type = ProgressPublished
			event.PostURL = postURL
		}

		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// markupTypes lists content types whose processed output is HTML and
// carries an extractable title heading.
var markupTypes = map[string]bool{
	gcsadmin.TypeGoogleDoc: true,
	gcsadmin.TypeDocx:      true,
	gcsadmin.TypeDoc:       true,
}

// processFile fetches and processes a single file.
func (p *Pipeline) processFile(ctx context.Context, position int, file *gcsadmin.File) fileResult {
	result := fileResult{position: position, file: file}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			result.err = err
			return result
		}
	}

	// Google-native documents have no raw bytes; they are exported as
	// HTML. Everything else downloads verbatim.
	var content []byte
	var err error
	if file.MimeType == gcsadmin.TypeGoogleDoc {
		content, err = p.Reader.Export(ctx, file.ID, "text/html")
	} else {
		content, err = p.Reader.Download(ctx, file.ID)
	}
	if err != nil {
		result.err = err
		return result
	}

	body, err := p.Processor.Process(&gcsadmin.RawDocument{
		Content:     content,
		ContentType: file.MimeType,
		Name:        file.Name,
	})
	if err != nil {
		result.err = err
		return result
	}

	result.title = file.Name
	result.body = body
	if markupTypes[file.MimeType] {
		extracted := gcsadmin.ExtractTitle(body)
		result.body = extracted.Content
		if extracted.Title != "" {
			result.title = extracted.Title
		}
	}
	result.hash = gcsadmin.HashContent(result.body)

	return result
}

// record publishes a processed file and persists the outcome. It
// returns the resulting document status and, when published, the post
// URL.
func (p *Pipeline) record(ctx context.Context, fr fileResult, entries map[string]*gcsadmin.TrackerEntry) (string, string, error) {
	if fr.err != nil {
		p.recordStatus(ctx, fr, gcsadmin.StatusFailed, entries)
		return gcsadmin.StatusFailed, "", fr.err
	}

	// Empty output means the document was all trailing metadata or
	// whitespace. Nothing to publish.
	if fr.body == "" {
		p.recordStatus(ctx, fr, gcsadmin.StatusSkipped, entries)
		return gcsadmin.StatusSkipped, "", nil
	}

	// Unchanged since the last published run: skip the CMS call.
	existing, err := p.Documents.FindDocumentByFileID(ctx, fr.file.ID)
	if err != nil && gcsadmin.ErrorCode(err) != gcsadmin.ENOTFOUND {
		return gcsadmin.StatusFailed, "", err
	}
	if existing != nil && existing.ContentHash == fr.hash && existing.Status == gcsadmin.StatusPublished {
		return gcsadmin.StatusSkipped, "", nil
	}

	post := &gcsadmin.Post{
		Title:   fr.title,
		Content: fr.body,
		Status:  p.postStatus(),
	}
	if p.Describer != nil {
		// Metadata is best-effort; a describer outage never blocks
		// publishing.
		if meta, err := p.Describer.Describe(ctx, fr.title, fr.body); err == nil && meta != nil {
			post.Excerpt = meta.Excerpt
			post.Tags = meta.Tags
			post.Categories = meta.Categories
		}
	}

	ref, err := p.Publisher.Publish(ctx, post)
	if err != nil {
		p.recordStatus(ctx, fr, gcsadmin.StatusFailed, entries)
		return gcsadmin.StatusFailed, "", err
	}

	doc, err := p.saveDocument(ctx, fr, existing, ref)
	if err != nil {
		return gcsadmin.StatusFailed, "", err
	}

	if p.Archive != nil {
		if err := p.Archive.CreateDocument(ctx, doc); err != nil {
			return gcsadmin.StatusFailed, "", err
		}
	}

	p.updateTracker(ctx, fr.file.ID, gcsadmin.StatusPublished, ref.URL, entries)

	return gcsadmin.StatusPublished, ref.URL, nil
}

// saveDocument creates or updates the store record for a published file.
func (p *Pipeline) saveDocument(ctx context.Context, fr fileResult, existing *gcsadmin.Document, ref *gcsadmin.PostRef) (*gcsadmin.Document, error) {
	status := gcsadmin.StatusPublished
	if existing != nil {
		return p.Documents.UpdateDocument(ctx, existing.ID, gcsadmin.DocumentUpdate{
			Title:   &fr.title,
			Body:    &fr.body,
			PostID:  &ref.ID,
			PostURL: &ref.URL,
			Status:  &status,
		})
	}

	doc := &gcsadmin.Document{
		FileID:  fr.file.ID,
		Name:    fr.file.Name,
		Title:   fr.title,
		Body:    fr.body,
		PostID:  ref.ID,
		PostURL: ref.URL,
		Status:  status,
	}
	if err := p.Documents.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// recordStatus persists a non-published outcome. Bookkeeping failures
// here are ignored; the per-file error already describes the run.
func (p *Pipeline) recordStatus(ctx context.Context, fr fileResult, status string, entries map[string]*gcsadmin.TrackerEntry) {
	existing, err := p.Documents.FindDocumentByFileID(ctx, fr.file.ID)
	if err == nil && existing != nil {
		_, _ = p.Documents.UpdateDocument(ctx, existing.ID, gcsadmin.DocumentUpdate{Status: &status})
	} else if gcsadmin.ErrorCode(err) == gcsadmin.ENOTFOUND {
		_ = p.Documents.CreateDocument(ctx, &gcsadmin.Document{
			FileID: fr.file.ID,
			Name:   fr.file.Name,
			Title:  fr.title,
			Body:   fr.body,
			Status: status,
		})
	}

	p.updateTracker(ctx, fr.file.ID, status, "", entries)
}

func (p *Pipeline) updateTracker(ctx context.Context, fileID, status, postURL string, entries map[string]*gcsadmin.TrackerEntry) {
	if p.Tracker == nil || entries == nil {
		return
	}
	entry, ok := entries[fileID]
	if !ok {
		return
	}
	entry.Status = status
	entry.PostURL = postURL
	// A stale spreadsheet row never fails the run.
	_ = p.Tracker.UpdateEntry(ctx, entry)
}

func (p *Pipeline) postStatus() string {
	if p.PostStatus == "" {
		return "draft"
	}
	return p.PostStatus
}
