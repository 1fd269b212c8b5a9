// Package goquery provides goquery-based pre-cleaning for Google Docs
// HTML exports before they enter the markup normalizer.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// Ensure Precleaner implements gcsadmin.Precleaner at compile time.
var _ gcsadmin.Precleaner = (*Precleaner)(nil)

// titleSelectors match the elements the Docs renderer uses for the
// document's own title. The CMS has its own title field, so these must
// not survive into the post body.
const titleSelectors = "p.title, h1.title, h2.title, h3.title, h4.title, h5.title, h6.title"

var reDivTag = regexp.MustCompile(`(?i)</?div\b[^>]*>`)

// Precleaner reduces a Google Docs HTML export to its body content.
// Docs exports wrap the document in a full HTML page with an inline
// stylesheet, render the document title as a title-classed element,
// and nest everything in wrapper divs.
type Precleaner struct{}

// NewPrecleaner creates a new Precleaner.
func NewPrecleaner() *Precleaner {
	return &Precleaner{}
}

// Preclean extracts the body interior, drops the renderer's own title
// elements, and strips wrapper div tags. The result still carries the
// export's classes and styles; the markup normalizer removes those.
func (p *Precleaner) Preclean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", gcsadmin.Errorf(gcsadmin.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return html, nil
	}

	body.Find(titleSelectors).Remove()

	inner, err := body.Html()
	if err != nil {
		return "", gcsadmin.Errorf(gcsadmin.EINTERNAL, "failed to render body: %v", err)
	}

	return reDivTag.ReplaceAllString(inner, ""), nil
}
