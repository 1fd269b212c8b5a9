package main

import (
	"context"
	"io"

	gcsadmin "github.com/squareinnov8/gcs-admin"
	"github.com/squareinnov8/gcs-admin/pipeline"
	"github.com/squareinnov8/gcs-admin/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents gcsadmin.DocumentService
	Processor gcsadmin.DocumentProcessor
	Pipeline  *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sync    SyncCmd    `cmd:"" help:"Publish documents from a drive folder to the CMS"`
	Preview PreviewCmd `cmd:"" help:"Process a local file and print the result without publishing"`
	List    ListCmd    `cmd:"" help:"List processed documents"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a document record"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Folder      string  `arg:"" help:"Drive folder ID to publish from"`
	Tracker     string  `short:"t" help:"Tracking spreadsheet ID"`
	Sheet       string  `default:"Sheet1" help:"Sheet name within the tracking spreadsheet"`
	Status      string  `short:"s" default:"draft" help:"CMS status for created posts (draft or publish)"`
	Archive     string  `short:"a" help:"Directory to archive published documents as Markdown"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64 `default:"2" help:"Drive requests per second"`
	NoMetadata  bool    `help:"Skip LLM metadata generation"`
	Verbose     bool    `short:"v" help:"Log each processed and published document"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Path        string `arg:"" help:"Local file to process"`
	ContentType string `help:"Override the content type inferred from the extension"`
	Full        bool   `help:"Print the full processed body"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status string `short:"s" help:"Filter by status (published, skipped, failed)"`
	Limit  int    `default:"50" help:"Maximum number of documents to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	FileID string `arg:"" help:"Drive file ID of the record to delete"`
	Force  bool   `help:"Confirm deletion"`
}
