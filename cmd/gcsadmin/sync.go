package main

import (
	"fmt"

	"github.com/squareinnov8/gcs-admin/pipeline"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	if deps.Pipeline == nil {
		return fmt.Errorf("sync pipeline not configured")
	}

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d files\n", event.Total)
		case pipeline.ProgressPublished:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s -> %s\n", event.Completed, event.Total, event.Name, event.PostURL)
		case pipeline.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (unchanged)\n", event.Completed, event.Total, event.Name)
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Name, event.Error)
		case pipeline.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, c.Folder, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error syncing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Published %d, skipped %d, failed %d\n",
		result.Published, result.Skipped, result.Failed)

	return nil
}
