package mock

import (
	"context"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

var _ gcsadmin.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of gcsadmin.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error)
}

func (p *Publisher) Publish(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
	return p.PublishFn(ctx, post)
}
