package gcsadmin

import "context"

// TrackerEntry is one row of the tracking spreadsheet.
type TrackerEntry struct {
	// Row is the 1-based spreadsheet row the entry was read from,
	// including the header row. Required for updates.
	Row int

	FileID  string
	Name    string
	Status  string
	PostURL string
}

// Tracker records publish status for drive files in the tracking
// spreadsheet the editorial team maintains.
type Tracker interface {
	// ListEntries returns all tracked rows, excluding the header.
	ListEntries(ctx context.Context) ([]*TrackerEntry, error)

	// UpdateEntry writes the entry's status and post URL back to its row.
	UpdateEntry(ctx context.Context, entry *TrackerEntry) error
}
