package mock

import (
	"context"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

var _ gcsadmin.Describer = (*Describer)(nil)

// Describer is a mock implementation of gcsadmin.Describer.
type Describer struct {
	DescribeFn func(ctx context.Context, title, body string) (*gcsadmin.Metadata, error)
}

func (d *Describer) Describe(ctx context.Context, title, body string) (*gcsadmin.Metadata, error) {
	return d.DescribeFn(ctx, title, body)
}
