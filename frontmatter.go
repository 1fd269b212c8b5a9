package gcsadmin

import "strings"

// StripFrontmatter removes a leading ----delimited metadata block from
// markdown or plain text and trims the remainder. Text without a block
// is returned trimmed and otherwise unchanged.
func StripFrontmatter(text string) string {
	_, body, ok := splitFrontmatter(text)
	if !ok {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(body)
}

// ParseFrontmatter parses the leading metadata block into key/value
// pairs. Each line splits on its first colon and surrounding quotes
// are stripped from values. Returns nil when no block is present.
func ParseFrontmatter(text string) map[string]string {
	block, _, ok := splitFrontmatter(text)
	if !ok {
		return nil
	}

	meta := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		meta[key] = value
	}
	return meta
}

// splitFrontmatter separates the frontmatter interior from the body.
// The opening delimiter must sit at the very start of the text; the
// closing delimiter may be the last line of the input.
func splitFrontmatter(text string) (block, body string, ok bool) {
	if !strings.HasPrefix(text, "---\n") {
		return "", text, false
	}
	rest := text[len("---\n"):]

	if idx := strings.Index(rest, "\n---\n"); idx >= 0 {
		return rest[:idx], rest[idx+len("\n---\n"):], true
	}
	if strings.HasSuffix(rest, "\n---") {
		return rest[:len(rest)-len("\n---")], "", true
	}
	return "", text, false
}
