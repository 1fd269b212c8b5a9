package gcsadmin

import (
	"regexp"
	"strings"
)

var (
	reH1Block = regexp.MustCompile(`(?is)<h1\b[^>]*>(.*?)</h1\s*>`)
	reH2Block = regexp.MustCompile(`(?is)<h2\b[^>]*>(.*?)</h2\s*>`)
)

// titleEntities decodes the fixed entity set that shows up in exported
// document headings.
var titleEntities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// TitleResult holds the outcome of title extraction.
type TitleResult struct {
	// Title is the plain-text title. Empty when no heading was found
	// or the matched heading had no text.
	Title string

	// Content is the markup with the matched heading element removed.
	Content string
}

// ExtractTitle scans markup for the first h1, falling back to the
// first h2, and extracts its decoded text as the canonical title. An
// h1 always wins, even when an h2 occurs earlier in the document. The
// matched heading element is removed from the content so the CMS's own
// title field is not duplicated in the body; only the first textual
// occurrence of the exact element is removed, so a second, identical
// heading elsewhere survives.
//
// Running ExtractTitle on its own Content output is a no-op unless
// another heading legitimately remains.
func ExtractTitle(html string) TitleResult {
	content := strings.TrimSpace(html)

	m := reH1Block.FindStringSubmatch(content)
	if m == nil {
		m = reH2Block.FindStringSubmatch(content)
	}
	if m == nil {
		return TitleResult{Content: content}
	}

	title := reAnyTag.ReplaceAllString(m[1], "")
	title = strings.TrimSpace(titleEntities.Replace(title))

	content = strings.TrimSpace(strings.Replace(content, m[0], "", 1))

	return TitleResult{Title: title, Content: content}
}
