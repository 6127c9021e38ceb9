package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskSortOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  TaskSortOrder
	}{
		{"title_asc", SortTitleAsc},
		{"title_desc", SortTitleDesc},
		{"date_asc", SortDateAsc},
		{"date_desc", SortDateDesc},
		{"", SortDefault},
		{"created_asc", SortDefault},
		{"TITLE_ASC", SortDefault},
		{"title asc", SortDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTaskSortOrder(tt.input), "selector %q", tt.input)
	}
}
