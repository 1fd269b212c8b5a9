// Package sheets provides a Google Sheets implementation of
// gcsadmin.Tracker over the editorial tracking spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"strings"

	gcsadmin "github.com/squareinnov8/gcs-admin"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Column headers the tracker recognizes in the sheet's first row.
// Matching is case-insensitive; unknown columns are ignored.
const (
	headerFileID  = "file id"
	headerName    = "name"
	headerStatus  = "status"
	headerPostURL = "post url"
)

// Ensure Tracker implements gcsadmin.Tracker at compile time.
var _ gcsadmin.Tracker = (*Tracker)(nil)

// Tracker reads and updates the tracking spreadsheet. The sheet's
// first row must be a header; column positions are discovered from it
// so editors can reorder columns freely.
type Tracker struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string

	// column index per recognized header, populated on ListEntries.
	columns map[string]int
}

// NewTracker creates a new Tracker for the given spreadsheet and sheet.
func NewTracker(ctx context.Context, spreadsheetID, sheetName string, opts ...option.ClientOption) (*Tracker, error) {
	if spreadsheetID == "" {
		return nil, gcsadmin.Errorf(gcsadmin.EINVALID, "spreadsheet ID required")
	}
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}, opts...)
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Tracker{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// ListEntries returns all tracked rows, excluding the header.
// Rows without a file ID are skipped.
func (t *Tracker) ListEntries(ctx context.Context) ([]*gcsadmin.TrackerEntry, error) {
	readRange := fmt.Sprintf("%s!A1:Z", t.sheetName)
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 {
		return nil, gcsadmin.Errorf(gcsadmin.EINVALID, "spreadsheet %q has no header row", t.spreadsheetID)
	}

	t.columns = mapColumns(resp.Values[0])
	if _, ok := t.columns[headerFileID]; !ok {
		return nil, gcsadmin.Errorf(gcsadmin.EINVALID, "spreadsheet %q has no %q column", t.spreadsheetID, headerFileID)
	}

	var entries []*gcsadmin.TrackerEntry
	for i, row := range resp.Values[1:] {
		entry := &gcsadmin.TrackerEntry{
			Row:     i + 2, // 1-based, after the header row
			FileID:  t.cell(row, headerFileID),
			Name:    t.cell(row, headerName),
			Status:  t.cell(row, headerStatus),
			PostURL: t.cell(row, headerPostURL),
		}
		if entry.FileID == "" {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// UpdateEntry writes the entry's status and post URL back to its row.
// ListEntries must have run first so column positions are known.
func (t *Tracker) UpdateEntry(ctx context.Context, entry *gcsadmin.TrackerEntry) error {
	if entry.Row < 2 {
		return gcsadmin.Errorf(gcsadmin.EINVALID, "tracker entry row %d invalid", entry.Row)
	}
	if t.columns == nil {
		return gcsadmin.Errorf(gcsadmin.EINTERNAL, "tracker columns not mapped; call ListEntries first")
	}

	updates := map[string]string{
		headerStatus:  entry.Status,
		headerPostURL: entry.PostURL,
	}
	for header, value := range updates {
		col, ok := t.columns[header]
		if !ok {
			continue
		}
		cellRange := fmt.Sprintf("%s!%s%d", t.sheetName, columnLetter(col), entry.Row)
		_, err := t.svc.Spreadsheets.Values.
			Update(t.spreadsheetID, cellRange, &sheets.ValueRange{Values: [][]any{{value}}}).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			return err
		}
	}

	return nil
}

func (t *Tracker) cell(row []any, header string) string {
	col, ok := t.columns[header]
	if !ok || col >= len(row) {
		return ""
	}
	s, _ := row[col].(string)
	return strings.TrimSpace(s)
}

func mapColumns(header []any) map[string]int {
	columns := make(map[string]int)
	for i, v := range header {
		name, _ := v.(string)
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			columns[name] = i
		}
	}
	return columns
}

// columnLetter converts a zero-based column index to the A1-notation
// column ("A", "B", ..., "AA").
func columnLetter(col int) string {
	letters := ""
	for col >= 0 {
		letters = string(rune('A'+col%26)) + letters
		col = col/26 - 1
	}
	return letters
}
