package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected []string
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "single string", input: "txt", expected: []string{"txt"}},
		{name: "string slice", input: []string{"a", "b"}, expected: []string{"a", "b"}},
		{
			name:     "flat interface slice",
			input:    []interface{}{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "nested preserves order",
			input:    []interface{}{"a", []interface{}{"b", []interface{}{"c"}}, "d"},
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "mixed string slices inside",
			input:    []interface{}{[]string{"a", "b"}, "c"},
			expected: []string{"a", "b", "c"},
		},
		{name: "non-string scalar", input: 7, expected: []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Flatten(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(nil))
	assert.Equal(t, []string{"a", "b"}, SplitList([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b", "c"}, SplitList([]string{"a,b", "c"}))
	assert.Equal(t, []string{"a", "b"}, SplitList([]string{" a , b "}))
	assert.Nil(t, SplitList([]string{"", " ", ","}))
}
