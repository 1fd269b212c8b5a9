package main

import (
	"fmt"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := gcsadmin.DocumentFilter{Limit: c.Limit}
	if c.Status != "" {
		filter.Status = &c.Status
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gcsadmin.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'gcsadmin sync' to publish a folder.")
		return nil
	}

	for _, doc := range docs {
		url := doc.PostURL
		if url == "" {
			url = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-9s  %s  %s\n", doc.FileID, doc.Status, doc.Name, url)
	}

	return nil
}
