package gcsadmin_test

import (
	"testing"

	gcsadmin "github.com/squareinnov8/gcs-admin"
	"github.com/stretchr/testify/assert"
)

func TestStripFrontmatter(t *testing.T) {
	t.Parallel()

	t.Run("removes leading block and trims body", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.StripFrontmatter("---\nkey: v\n---\nBody")

		assert.Equal(t, "Body", result)
	})

	t.Run("returns trimmed input when no block present", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.StripFrontmatter("  # Heading\n\nBody  ")

		assert.Equal(t, "# Heading\n\nBody", result)
	})

	t.Run("block must start at the beginning", func(t *testing.T) {
		t.Parallel()

		input := "intro\n---\nkey: v\n---\nBody"
		result := gcsadmin.StripFrontmatter(input)

		assert.Equal(t, input, result)
	})

	t.Run("unterminated block is left alone", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.StripFrontmatter("---\nkey: v\nBody")

		assert.Equal(t, "---\nkey: v\nBody", result)
	})

	t.Run("handles closing delimiter at end of input", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.StripFrontmatter("---\nkey: v\n---")

		assert.Empty(t, result)
	})
}

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()

	t.Run("parses key value pairs", func(t *testing.T) {
		t.Parallel()

		meta := gcsadmin.ParseFrontmatter("---\nkey: v\n---\nBody")

		assert.Equal(t, map[string]string{"key": "v"}, meta)
	})

	t.Run("strips quotes from values", func(t *testing.T) {
		t.Parallel()

		meta := gcsadmin.ParseFrontmatter("---\ntitle: \"Quoted Title\"\nauthor: 'Jo'\n---\nBody")

		assert.Equal(t, "Quoted Title", meta["title"])
		assert.Equal(t, "Jo", meta["author"])
	})

	t.Run("splits on the first colon only", func(t *testing.T) {
		t.Parallel()

		meta := gcsadmin.ParseFrontmatter("---\nurl: https://example.com\n---\nBody")

		assert.Equal(t, "https://example.com", meta["url"])
	})

	t.Run("skips lines without a colon", func(t *testing.T) {
		t.Parallel()

		meta := gcsadmin.ParseFrontmatter("---\njust a line\nkey: v\n---\nBody")

		assert.Equal(t, map[string]string{"key": "v"}, meta)
	})

	t.Run("returns nil when no block present", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, gcsadmin.ParseFrontmatter("plain text"))
	})
}
