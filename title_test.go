package gcsadmin_test

import (
	"testing"

	gcsadmin "github.com/squareinnov8/gcs-admin"
	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	t.Run("extracts first h1 and removes it from content", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.ExtractTitle("<h1>My Title</h1>\n\n<p>Body</p>")

		assert.Equal(t, "My Title", result.Title)
		assert.Equal(t, "<p>Body</p>", result.Content)
	})

	t.Run("h1 wins over an earlier h2", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.ExtractTitle("<h2>B</h2><h1>A</h1>")

		assert.Equal(t, "A", result.Title)
		assert.Equal(t, "<h2>B</h2>", result.Content)
	})

	t.Run("falls back to h2 when no h1 exists", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.ExtractTitle("<h2>Section Title</h2><p>Body</p>")

		assert.Equal(t, "Section Title", result.Title)
		assert.Equal(t, "<p>Body</p>", result.Content)
	})

	t.Run("returns empty title and unchanged content without headings", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.ExtractTitle("  <p>Just text</p>  ")

		assert.Empty(t, result.Title)
		assert.Equal(t, "<p>Just text</p>", result.Content)
	})

	t.Run("strips nested tags from the title text", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.ExtractTitle("<h1><em>Big</em> News</h1><p>Body</p>")

		assert.Equal(t, "Big News", result.Title)
	})

	t.Run("decodes entities", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.ExtractTitle("<h1>Tom &amp; Jerry</h1><p>Body</p>")

		assert.Equal(t, "Tom & Jerry", result.Title)
	})

	t.Run("decodes nbsp and quotes", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.ExtractTitle("<h1>&quot;Hello&nbsp;there&quot;</h1>")

		assert.Equal(t, `"Hello there"`, result.Title)
	})

	t.Run("whitespace-only heading yields empty title", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.ExtractTitle("<h1> &nbsp; </h1><p>Body</p>")

		assert.Empty(t, result.Title)
	})

	t.Run("removes only the first occurrence of the heading", func(t *testing.T) {
		t.Parallel()

		result := gcsadmin.ExtractTitle("<h1>Same</h1><p>Body</p><h1>Same</h1>")

		assert.Equal(t, "Same", result.Title)
		assert.Equal(t, "<p>Body</p><h1>Same</h1>", result.Content)
	})

	t.Run("is idempotent on its own output", func(t *testing.T) {
		t.Parallel()

		first := gcsadmin.ExtractTitle("<h1>Title</h1><p>Body</p>")
		second := gcsadmin.ExtractTitle(first.Content)

		assert.Empty(t, second.Title)
		assert.Equal(t, first.Content, second.Content)
	})
}
