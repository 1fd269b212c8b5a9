// Package docx converts word-processor binaries to HTML using etree
// over the OOXML document part.
package docx

import (
	"archive/zip"
	"bytes"
	"html"
	"io"
	"strings"

	"github.com/beevik/etree"
	gcsadmin "github.com/squareinnov8/gcs-admin"
)

// Ensure Converter implements gcsadmin.Converter at compile time.
var _ gcsadmin.Converter = (*Converter)(nil)

// Converter turns .docx binaries into simple HTML. Only the structure
// the markup normalizer cares about is emitted: headings, paragraphs,
// list items, bold/italic runs, line breaks, and hyperlinks. Legacy
// binary .doc files are not OOXML archives and fail with ECONVERSION.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert transforms the binary document into HTML.
func (c *Converter) Convert(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", gcsadmin.Errorf(gcsadmin.ECONVERSION, "not an OOXML document: %v", err)
	}

	docXML, err := readArchiveFile(zr, "word/document.xml")
	if err != nil {
		return "", err
	}

	// Hyperlink targets live in the relationships part, keyed by r:id.
	rels := map[string]string{}
	if relsXML, err := readArchiveFile(zr, "word/_rels/document.xml.rels"); err == nil {
		rels = parseRelationships(relsXML)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(docXML); err != nil {
		return "", gcsadmin.Errorf(gcsadmin.ECONVERSION, "malformed document XML: %v", err)
	}

	body := doc.FindElement("//body")
	if body == nil {
		return "", gcsadmin.Errorf(gcsadmin.ECONVERSION, "document has no body element")
	}

	var b strings.Builder
	inList := false
	for _, para := range body.SelectElements("p") {
		writeParagraph(&b, para, rels, &inList)
	}
	if inList {
		b.WriteString("</ul>\n")
	}

	return b.String(), nil
}

func readArchiveFile(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, gcsadmin.Errorf(gcsadmin.ECONVERSION, "missing archive entry %q", name)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, gcsadmin.Errorf(gcsadmin.ECONVERSION, "failed to read %q: %v", name, err)
	}
	return data, nil
}

func parseRelationships(relsXML []byte) map[string]string {
	rels := make(map[string]string)
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(relsXML); err != nil {
		return rels
	}
	for _, rel := range doc.FindElements("//Relationship") {
		id := rel.SelectAttrValue("Id", "")
		target := rel.SelectAttrValue("Target", "")
		if id != "" && target != "" {
			rels[id] = target
		}
	}
	return rels
}

// writeParagraph emits one w:p element. Consecutive list paragraphs
// are grouped into a single ul; the style name decides the block tag.
func writeParagraph(b *strings.Builder, para *etree.Element, rels map[string]string, inList *bool) {
	style := paragraphStyle(para)
	listItem := isListParagraph(para, style)

	if listItem && !*inList {
		b.WriteString("<ul>\n")
		*inList = true
	}
	if !listItem && *inList {
		b.WriteString("</ul>\n")
		*inList = false
	}

	tag := blockTag(style, listItem)
	inner := runContent(para, rels)

	b.WriteString("<" + tag + ">")
	b.WriteString(inner)
	b.WriteString("</" + tag + ">\n")
}

func paragraphStyle(para *etree.Element) string {
	if pPr := para.SelectElement("pPr"); pPr != nil {
		if pStyle := pPr.SelectElement("pStyle"); pStyle != nil {
			return pStyle.SelectAttrValue("val", "")
		}
	}
	return ""
}

func isListParagraph(para *etree.Element, style string) bool {
	if style == "ListParagraph" {
		return true
	}
	if pPr := para.SelectElement("pPr"); pPr != nil {
		return pPr.SelectElement("numPr") != nil
	}
	return false
}

func blockTag(style string, listItem bool) string {
	if listItem {
		return "li"
	}
	switch style {
	case "Heading1", "Title":
		return "h1"
	case "Heading2":
		return "h2"
	case "Heading3":
		return "h3"
	case "Heading4":
		return "h4"
	case "Heading5":
		return "h5"
	case "Heading6":
		return "h6"
	}
	return "p"
}

// runContent walks the runs of a paragraph, wrapping bold and italic
// runs and resolving hyperlink relationships.
func runContent(para *etree.Element, rels map[string]string) string {
	var b strings.Builder
	for _, child := range para.ChildElements() {
		switch child.Tag {
		case "r":
			b.WriteString(runText(child))
		case "hyperlink":
			href := rels[child.SelectAttrValue("id", "")]
			var inner strings.Builder
			for _, run := range child.SelectElements("r") {
				inner.WriteString(runText(run))
			}
			if href != "" {
				b.WriteString(`<a href="` + html.EscapeString(href) + `">` + inner.String() + "</a>")
			} else {
				b.WriteString(inner.String())
			}
		}
	}
	return b.String()
}

func runText(run *etree.Element) string {
	var b strings.Builder
	for _, child := range run.ChildElements() {
		switch child.Tag {
		case "t":
			b.WriteString(html.EscapeString(child.Text()))
		case "br":
			b.WriteString("<br>")
		case "tab":
			b.WriteString(" ")
		}
	}
	text := b.String()
	if text == "" {
		return ""
	}

	if rPr := run.SelectElement("rPr"); rPr != nil {
		if rPr.SelectElement("i") != nil {
			text = "<em>" + text + "</em>"
		}
		if rPr.SelectElement("b") != nil {
			text = "<strong>" + text + "</strong>"
		}
	}
	return text
}
