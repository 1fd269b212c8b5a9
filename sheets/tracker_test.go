package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, columnLetter(tt.col))
	}
}

func TestMapColumns(t *testing.T) {
	t.Parallel()

	columns := mapColumns([]any{"File ID", " Name ", "STATUS", "", "Post URL", 42})

	assert.Equal(t, 0, columns["file id"])
	assert.Equal(t, 1, columns["name"])
	assert.Equal(t, 2, columns["status"])
	assert.Equal(t, 4, columns["post url"])
	assert.NotContains(t, columns, "")
}
