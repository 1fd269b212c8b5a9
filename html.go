package gcsadmin

import (
	"regexp"
	"strings"
)

// allowedTags is the markup subset that survives normalization.
// Anything else is unwrapped, keeping its inner text.
var allowedTags = map[string]bool{
	"a": true, "p": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"strong": true, "b": true, "em": true, "i": true,
	"ul": true, "ol": true, "li": true,
}

// metaLabels are the administrative section labels authors use for the
// internal notes they append below the article body. A heading,
// paragraph, or bold run matching one of these (case-insensitively,
// whitespace-normalized) marks the start of trailing meta content.
var metaLabels = map[string]bool{
	"meta information":    true,
	"meta info":           true,
	"article meta":        true,
	"post meta":           true,
	"seo information":     true,
	"seo info":            true,
	"seo details":         true,
	"seo":                 true,
	"metadata":            true,
	"meta data":           true,
	"article information": true,
	"keywords":            true,
	"tags":                true,
	"categories":          true,
	"notes":               true,
	"internal notes":      true,
	"editor notes":        true,
}

var (
	reHR        = regexp.MustCompile(`(?i)<hr\b[^>]*>`)
	reMetaBlock = regexp.MustCompile(`(?is)<(?:h[1-6]|p|strong|b)\b[^>]*>(.*?)</(?:h[1-6]|p|strong|b)\s*>`)
	reRuleRun   = regexp.MustCompile(`[-_=*]{3,}`)
	reRuleText  = regexp.MustCompile(`^[-_=*]{3,}$`)
	reAnyTag    = regexp.MustCompile(`(?s)<[^>]*>`)
	reWSRun     = regexp.MustCompile(`\s+`)

	reScript  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	reStyle   = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	reComment = regexp.MustCompile(`(?s)<!--.*?-->`)
	reTag     = regexp.MustCompile(`(?s)</?([a-zA-Z][a-zA-Z0-9]*)[^>]*>`)
	reHref    = regexp.MustCompile(`(?is)\bhref\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)

	reSpaceRun   = regexp.MustCompile(`[ \t]+`)
	reAfterTag   = regexp.MustCompile(`>[ \t]+`)
	reBeforeTag  = regexp.MustCompile(`[ \t]+<`)
	reEmptyP     = regexp.MustCompile(`(?i)<p>(?:\s|&nbsp;)*</p>`)
	reBrRun      = regexp.MustCompile(`(?i)(?:<br>\s*){3,}`)
	reBlockBound = regexp.MustCompile(`(?i)</(p|h[1-6])>\s*<(p|h[1-6])>`)

	reLeadingText = regexp.MustCompile(`^[^<]+`)
)

// CleanHTML normalizes exported document markup into the allowed tag
// subset. It is a pure function and never fails: malformed markup
// degrades to no-ops rather than errors, and the result may be empty
// when nothing publishable remains. Callers must treat an empty result
// as "no content".
//
// Pass order is load-bearing: the trailing-meta patterns match tags
// that still carry class attributes, so truncation runs before
// attribute stripping.
func CleanHTML(html string) string {
	s := truncateTrailingMeta(html)
	s = allowlistTags(s)
	s = normalizeWhitespace(s)
	s = reLeadingText.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// truncateTrailingMeta drops everything from the first trailing-meta
// marker to the end of the string: a horizontal rule, a block whose
// text is an administrative label, or a run of three or more
// rule characters. Authors append SEO notes and internal metadata
// below the article body; none of it may reach the published post.
func truncateTrailingMeta(s string) string {
	cut := len(s)

	if loc := reHR.FindStringIndex(s); loc != nil {
		cut = loc[0]
	}

	for _, m := range reMetaBlock.FindAllStringSubmatchIndex(s, -1) {
		if m[0] >= cut {
			break
		}
		text := reAnyTag.ReplaceAllString(s[m[2]:m[3]], " ")
		text = strings.ToLower(strings.TrimSpace(reWSRun.ReplaceAllString(text, " ")))
		if metaLabels[text] || reRuleText.MatchString(text) {
			cut = m[0]
			break
		}
	}

	if loc := reRuleRun.FindStringIndex(s); loc != nil && loc[0] < cut {
		cut = loc[0]
	}

	return s[:cut]
}

// allowlistTags reduces markup to the allowed tag set. Scripts, styles
// and comments are removed with their content; div becomes p, span is
// unwrapped, and any other disallowed tag is dropped while its inner
// text is kept. Only the href attribute on anchors survives.
func allowlistTags(s string) string {
	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")
	s = reComment.ReplaceAllString(s, "")

	return reTag.ReplaceAllStringFunc(s, func(tag string) string {
		name := strings.ToLower(reTag.FindStringSubmatch(tag)[1])
		closing := strings.HasPrefix(tag, "</")

		if name == "div" {
			name = "p"
		}
		if name == "span" || !allowedTags[name] {
			return ""
		}
		if closing {
			return "</" + name + ">"
		}
		if name == "a" {
			if m := reHref.FindStringSubmatch(tag); m != nil {
				return `<a href="` + strings.Trim(m[1], `"'`) + `">`
			}
			return "<a>"
		}
		return "<" + name + ">"
	})
}

// normalizeWhitespace collapses space runs, removes whitespace at tag
// boundaries, drops empty paragraphs, caps line-break runs at two, and
// inserts a blank line between adjacent block elements so the output
// stays human-readable without changing rendered semantics.
func normalizeWhitespace(s string) string {
	s = reSpaceRun.ReplaceAllString(s, " ")
	s = reAfterTag.ReplaceAllString(s, ">")
	s = reBeforeTag.ReplaceAllString(s, "<")

	// Removing an empty paragraph can expose another one, so repeat
	// until stable.
	for {
		out := reEmptyP.ReplaceAllString(s, "")
		if out == s {
			break
		}
		s = out
	}

	s = reBrRun.ReplaceAllString(s, "<br><br>")
	s = reBlockBound.ReplaceAllString(s, "</$1>\n\n<$2>")

	return s
}
