package slog

import (
	"log/slog"
	"time"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// Ensure LoggingProcessor implements gcsadmin.DocumentProcessor.
var _ gcsadmin.DocumentProcessor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a DocumentProcessor with debug logging of
// each conversion.
type LoggingProcessor struct {
	next   gcsadmin.DocumentProcessor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next gcsadmin.DocumentProcessor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// Process delegates to the wrapped processor and logs the outcome.
func (p *LoggingProcessor) Process(raw *gcsadmin.RawDocument) (string, error) {
	begin := time.Now()
	content, err := p.next.Process(raw)
	if err != nil {
		p.logger.Error("process",
			"name", raw.Name,
			"content_type", raw.ContentType,
			"err", err,
			"duration", time.Since(begin),
		)
		return "", err
	}

	p.logger.Info("process",
		"name", raw.Name,
		"content_type", raw.ContentType,
		"bytes", len(content),
		"duration", time.Since(begin),
	)
	return content, nil
}
