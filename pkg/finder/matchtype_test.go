package finder

import (
	"testing"

	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchType(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    MatchType
		expectError bool
	}{
		{name: "extension", input: "ext", expected: MatchExtension},
		{name: "glob left", input: "glob_left", expected: MatchGlobLeft},
		{name: "glob right", input: "glob_right", expected: MatchGlobRight},
		{name: "glob both", input: "glob_both", expected: MatchGlobBoth},
		{name: "whole word", input: "ww", expected: MatchWholeWord},
		{name: "bogus", input: "bogus", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "case matters", input: "EXT", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, err := ParseMatchType(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMatchType))
				// The message enumerates the valid set
				for _, name := range MatchTypeNames() {
					assert.Contains(t, err.Error(), name)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, mt)
				assert.Equal(t, tt.input, mt.String())
			}
		})
	}
}

func TestMatchTypeTransform(t *testing.T) {
	patterns := []string{"txt", "rep"}

	tests := []struct {
		name     string
		mode     MatchType
		expected []string
	}{
		{name: "ext unchanged", mode: MatchExtension, expected: []string{"txt", "rep"}},
		{name: "glob left prepends wildcard", mode: MatchGlobLeft, expected: []string{"*txt", "*rep"}},
		{name: "glob right appends wildcard", mode: MatchGlobRight, expected: []string{"txt*", "rep*"}},
		{name: "glob both wraps", mode: MatchGlobBoth, expected: []string{"*txt*", "*rep*"}},
		{name: "whole word unchanged", mode: MatchWholeWord, expected: []string{"txt", "rep"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.transform(patterns))
		})
	}
}

func TestParseTask(t *testing.T) {
	task, err := ParseTask("extensions")
	require.NoError(t, err)
	assert.Equal(t, TaskExtensions, task)

	task, err = ParseTask("directories")
	require.NoError(t, err)
	assert.Equal(t, TaskDirectories, task)

	_, err = ParseTask("everything")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTask))
	assert.Contains(t, err.Error(), "extensions")
	assert.Contains(t, err.Error(), "directories")
}

func TestMatchTypeString_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", MatchType(99).String())
	assert.Equal(t, "unknown", Task(99).String())
}
