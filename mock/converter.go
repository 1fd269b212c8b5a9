package mock

import gcsadmin "github.com/squareinnov8/gcs-admin"

var _ gcsadmin.Converter = (*Converter)(nil)

// Converter is a mock implementation of gcsadmin.Converter.
type Converter struct {
	ConvertFn func(data []byte) (string, error)
}

func (c *Converter) Convert(data []byte) (string, error) {
	return c.ConvertFn(data)
}

var _ gcsadmin.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of gcsadmin.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(data []byte) (string, error)
}

func (e *TextExtractor) ExtractText(data []byte) (string, error) {
	return e.ExtractTextFn(data)
}

var _ gcsadmin.Precleaner = (*Precleaner)(nil)

// Precleaner is a mock implementation of gcsadmin.Precleaner.
type Precleaner struct {
	PrecleanFn func(html string) (string, error)
}

func (p *Precleaner) Preclean(html string) (string, error) {
	return p.PrecleanFn(html)
}

var _ gcsadmin.MarkdownConverter = (*MarkdownConverter)(nil)

// MarkdownConverter is a mock implementation of gcsadmin.MarkdownConverter.
type MarkdownConverter struct {
	ConvertFn func(html string) (string, error)
}

func (c *MarkdownConverter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
