package mock

import (
	"context"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

var _ gcsadmin.Tracker = (*Tracker)(nil)

// Tracker is a mock implementation of gcsadmin.Tracker.
type Tracker struct {
	ListEntriesFn func(ctx context.Context) ([]*gcsadmin.TrackerEntry, error)
	UpdateEntryFn func(ctx context.Context, entry *gcsadmin.TrackerEntry) error
}

func (t *Tracker) ListEntries(ctx context.Context) ([]*gcsadmin.TrackerEntry, error) {
	return t.ListEntriesFn(ctx)
}

func (t *Tracker) UpdateEntry(ctx context.Context, entry *gcsadmin.TrackerEntry) error {
	return t.UpdateEntryFn(ctx, entry)
}
