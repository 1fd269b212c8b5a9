package gcsadmin

// Converter converts a word-processor binary (legacy or XML-based)
// into HTML suitable for the markup normalizer.
type Converter interface {
	// Convert transforms the binary document into HTML.
	// Fails with ECONVERSION when the binary cannot be parsed.
	Convert(data []byte) (string, error)
}

// TextExtractor extracts plain text from a PDF binary.
// The extracted text is published as-is, without markup normalization.
type TextExtractor interface {
	// ExtractText returns the text content of the PDF.
	// Fails with ECONVERSION when the binary cannot be parsed.
	ExtractText(data []byte) (string, error)
}

// Precleaner reduces a renderer's full HTML export to its body content
// before the markup normalizer runs. Implementations drop the
// renderer's own title elements and wrapper markup.
type Precleaner interface {
	Preclean(html string) (string, error)
}

// MarkdownConverter converts cleaned HTML to Markdown. Used by the
// archive writer to keep a local copy of published documents.
type MarkdownConverter interface {
	Convert(html string) (string, error)
}
