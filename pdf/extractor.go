// Package pdf extracts plain text from PDF binaries.
package pdf

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// Ensure Extractor implements gcsadmin.TextExtractor at compile time.
var _ gcsadmin.TextExtractor = (*Extractor)(nil)

// Extractor pulls the text content out of a PDF. The text is published
// as-is; PDF input never goes through the markup normalizer.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the text content of the PDF.
func (e *Extractor) ExtractText(data []byte) (result string, err error) {
	// The underlying reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = gcsadmin.Errorf(gcsadmin.ECONVERSION, "failed to parse PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", gcsadmin.Errorf(gcsadmin.ECONVERSION, "failed to open PDF: %v", err)
	}

	text, err := r.GetPlainText()
	if err != nil {
		return "", gcsadmin.Errorf(gcsadmin.ECONVERSION, "failed to extract PDF text: %v", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(text); err != nil {
		return "", gcsadmin.Errorf(gcsadmin.ECONVERSION, "failed to read PDF text: %v", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
