package gcsadmin

import "strings"

// DocumentProcessor turns a raw drive file into publishable text.
type DocumentProcessor interface {
	Process(raw *RawDocument) (string, error)
}

// Ensure Processor implements DocumentProcessor at compile time.
var _ DocumentProcessor = (*Processor)(nil)

// Processor is the format dispatcher: it selects a parsing strategy
// from the declared content type and runs the result of markup paths
// through the normalizer. Binary formats are handed to the external
// conversion collaborators.
type Processor struct {
	// Precleaner reduces Google Docs HTML exports to body content.
	// Optional; without it the raw export feeds the normalizer.
	Precleaner Precleaner

	// Converter turns word-processor binaries into HTML. Required for
	// the msword and wordprocessingml content types.
	Converter Converter

	// Extractor pulls plain text out of PDF binaries. Required for
	// application/pdf.
	Extractor TextExtractor
}

// Process dispatches on the declared content type and returns cleaned
// markup (or, for PDF and markdown input, plain text). Unrecognized
// types fall back to the .md filename extension, then fail with
// EUNSUPPORTED. Collaborator failures propagate unretried.
func (p *Processor) Process(raw *RawDocument) (string, error) {
	switch raw.ContentType {
	case TypeGoogleDoc:
		html := string(raw.Content)
		if p.Precleaner != nil {
			// The precleaner degrades gracefully: on a parse failure
			// the raw export feeds the normalizer unchanged.
			if cleaned, err := p.Precleaner.Preclean(html); err == nil {
				html = cleaned
			}
		}
		return CleanHTML(html), nil

	case TypeDocx, TypeDoc:
		if p.Converter == nil {
			return "", Errorf(ECONVERSION, "no word-processor converter configured")
		}
		html, err := p.Converter.Convert(raw.Content)
		if err != nil {
			return "", err
		}
		return CleanHTML(html), nil

	case TypePDF:
		if p.Extractor == nil {
			return "", Errorf(ECONVERSION, "no PDF text extractor configured")
		}
		return p.Extractor.ExtractText(raw.Content)

	case TypeMarkdown, TypeMarkdownX, TypePlain:
		return StripFrontmatter(string(raw.Content)), nil

	default:
		if strings.HasSuffix(raw.Name, ".md") {
			return StripFrontmatter(string(raw.Content)), nil
		}
		return "", Errorf(EUNSUPPORTED, "unsupported content type %q for %q", raw.ContentType, raw.Name)
	}
}
