// Package slog provides logging decorators for gcsadmin services.
package slog

import (
	"context"
	"log/slog"
	"time"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// Ensure LoggingPublisher implements gcsadmin.Publisher.
var _ gcsadmin.Publisher = (*LoggingPublisher)(nil)

// LoggingPublisher wraps a Publisher with structured logging of each
// publish attempt.
type LoggingPublisher struct {
	next   gcsadmin.Publisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next gcsadmin.Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish delegates to the wrapped publisher and logs the outcome.
func (p *LoggingPublisher) Publish(ctx context.Context, post *gcsadmin.Post) (*gcsadmin.PostRef, error) {
	begin := time.Now()
	ref, err := p.next.Publish(ctx, post)
	if err != nil {
		p.logger.Error("publish",
			"title", post.Title,
			"err", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	p.logger.Info("publish",
		"title", post.Title,
		"post_id", ref.ID,
		"url", ref.URL,
		"duration", time.Since(begin),
	)
	return ref, nil
}
