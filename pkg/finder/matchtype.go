package finder

import (
	"strings"

	"github.com/arthur-debert/filewise/pkg/errors"
)

// MatchType selects the strategy used to match candidate file names
// against the caller's patterns. Each mode carries its own pattern
// transform and match predicate, so adding a mode means adding a
// variant here rather than growing string-keyed dispatch tables.
type MatchType int

const (
	// MatchExtension compares the file's extension against each
	// pattern, case-insensitively. The leading dot is optional.
	MatchExtension MatchType = iota

	// MatchGlobLeft prepends a wildcard: names ending with the pattern.
	MatchGlobLeft

	// MatchGlobRight appends a wildcard: names starting with the pattern.
	MatchGlobRight

	// MatchGlobBoth wraps the pattern in wildcards: names containing it.
	MatchGlobBoth

	// MatchWholeWord requires the base name to equal the pattern exactly.
	MatchWholeWord
)

var matchTypeNames = [...]string{
	MatchExtension: "ext",
	MatchGlobLeft:  "glob_left",
	MatchGlobRight: "glob_right",
	MatchGlobBoth:  "glob_both",
	MatchWholeWord: "ww",
}

// MatchTypeNames returns the recognized match type names, in
// declaration order. Used in error messages and CLI help.
func MatchTypeNames() []string {
	names := make([]string, len(matchTypeNames))
	copy(names, matchTypeNames[:])
	return names
}

// ParseMatchType converts a match type name into its MatchType value.
// Unrecognized names fail with an invalid-match-type error that
// enumerates the valid set.
func ParseMatchType(name string) (MatchType, error) {
	for mt, n := range matchTypeNames {
		if n == name {
			return MatchType(mt), nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidMatchType,
		"invalid match type %q, choose one from: %s",
		name, strings.Join(MatchTypeNames(), ", "))
}

// String returns the match type's name, or "unknown" for out-of-range values
func (m MatchType) String() string {
	if !m.valid() {
		return "unknown"
	}
	return matchTypeNames[m]
}

func (m MatchType) valid() bool {
	return m >= MatchExtension && m <= MatchWholeWord
}

// usesGlob reports whether this mode matches via compiled glob patterns
func (m MatchType) usesGlob() bool {
	switch m {
	case MatchGlobLeft, MatchGlobRight, MatchGlobBoth:
		return true
	}
	return false
}

// transform rewrites raw patterns into the effective glob forms for
// this mode. Extension and whole-word modes leave patterns untouched.
func (m MatchType) transform(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		switch m {
		case MatchGlobLeft:
			p = "*" + p
		case MatchGlobRight:
			p = p + "*"
		case MatchGlobBoth:
			p = "*" + p + "*"
		}
		out = append(out, p)
	}
	return out
}

// Task selects what FindItems enumerates.
type Task int

const (
	// TaskExtensions collects the distinct file extensions present.
	TaskExtensions Task = iota

	// TaskDirectories collects the distinct directory paths present.
	TaskDirectories
)

var taskNames = [...]string{
	TaskExtensions:  "extensions",
	TaskDirectories: "directories",
}

// TaskNames returns the recognized task names, in declaration order
func TaskNames() []string {
	names := make([]string, len(taskNames))
	copy(names, taskNames[:])
	return names
}

// ParseTask converts a task name into its Task value
func ParseTask(name string) (Task, error) {
	for t, n := range taskNames {
		if n == name {
			return Task(t), nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidTask,
		"invalid task %q, choose one from: %s",
		name, strings.Join(TaskNames(), ", "))
}

// String returns the task's name, or "unknown" for out-of-range values
func (t Task) String() string {
	if !t.valid() {
		return "unknown"
	}
	return taskNames[t]
}

func (t Task) valid() bool {
	return t >= TaskExtensions && t <= TaskDirectories
}
