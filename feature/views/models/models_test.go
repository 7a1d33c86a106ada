package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionIndices(t *testing.T) {
	tests := []struct {
		name   string
		column string
		want   []int
	}{
		{"Empty Column", "", []int{}},
		{"Empty Array", "[]", []int{}},
		{"Null", "null", []int{}},
		{"Values", "[2,0,5]", []int{2, 0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := View{Selection: tt.column}.SelectionIndices()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := View{Selection: "{"}.SelectionIndices()
	assert.Error(t, err)
}

func TestEncodeSelection(t *testing.T) {
	assert.Equal(t, "[]", EncodeSelection(nil))
	assert.Equal(t, "[1,3]", EncodeSelection([]int{1, 3}))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "list_views", View{}.TableName())
	assert.Equal(t, "list_view_items", ViewItem{}.TableName())
	assert.Len(t, All(), 2)
}
