package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOptions(t *testing.T) {
	opts := ParseOptions(map[string]string{
		OptionPreserveType:   "true",
		OptionResponseFormat: "sql",
	})
	assert.True(t, opts.PreserveType)
	assert.True(t, opts.ResponseFormatSQL)

	opts = ParseOptions(map[string]string{OptionPreserveType: "1"})
	assert.True(t, opts.PreserveType)
	assert.False(t, opts.ResponseFormatSQL)

	opts = ParseOptions(nil)
	assert.False(t, opts.PreserveType)
	assert.False(t, opts.ResponseFormatSQL)

	opts = ParseOptions(map[string]string{OptionResponseFormat: "json", "unrelated": "x"})
	assert.False(t, opts.ResponseFormatSQL)
}

func TestSelection_IsOrdered(t *testing.T) {
	orderBy := []OrderByClause{{Column: "a", Direction: SortOrderAscending}}
	assert.True(t, (&Selection{Size: 5, OrderBy: orderBy}).IsOrdered())
	assert.False(t, (&Selection{Size: 0, OrderBy: orderBy}).IsOrdered())
	assert.False(t, (&Selection{Size: 5}).IsOrdered())
}
