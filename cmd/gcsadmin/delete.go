package main

import (
	"fmt"

	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return gcsadmin.Errorf(gcsadmin.EINVALID, "use --force to confirm deletion")
	}

	doc, err := deps.Documents.FindDocumentByFileID(deps.Ctx, c.FileID)
	if err != nil {
		if gcsadmin.ErrorCode(err) == gcsadmin.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no record for file %q. Use 'gcsadmin list' to see documents.\n", c.FileID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gcsadmin.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, doc.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gcsadmin.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record for %q\n", doc.Name)
	return nil
}
