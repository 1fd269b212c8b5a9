package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// extensionTypes maps local file extensions to declared content types
// for preview runs. Exported drive files carry an explicit MIME type;
// local files only have a name.
var extensionTypes = map[string]string{
	".html": gcsadmin.TypeGoogleDoc,
	".htm":  gcsadmin.TypeGoogleDoc,
	".docx": gcsadmin.TypeDocx,
	".doc":  gcsadmin.TypeDoc,
	".pdf":  gcsadmin.TypePDF,
	".md":   gcsadmin.TypeMarkdown,
	".txt":  gcsadmin.TypePlain,
}

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	content, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	contentType := c.ContentType
	if contentType == "" {
		contentType = extensionTypes[strings.ToLower(filepath.Ext(c.Path))]
	}

	name := filepath.Base(c.Path)
	body, err := deps.Processor.Process(&gcsadmin.RawDocument{
		Content:     content,
		ContentType: contentType,
		Name:        name,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gcsadmin.ErrorMessage(err))
		return err
	}

	title := name
	switch contentType {
	case gcsadmin.TypeGoogleDoc, gcsadmin.TypeDocx, gcsadmin.TypeDoc:
		extracted := gcsadmin.ExtractTitle(body)
		body = extracted.Content
		if extracted.Title != "" {
			title = extracted.Title
		}
	}

	fmt.Fprintf(deps.Stdout, "Title: %s\n", title)
	if body == "" {
		fmt.Fprintln(deps.Stdout, "(document normalizes to nothing; sync would skip it)")
		return nil
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, body)
		return nil
	}

	const previewLimit = 500
	if len(body) > previewLimit {
		body = body[:previewLimit] + "..."
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", body)

	return nil
}
