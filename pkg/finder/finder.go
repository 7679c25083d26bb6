package finder

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/arthur-debert/filewise/pkg/filesystem"
	"github.com/arthur-debert/filewise/pkg/logging"
	"github.com/arthur-debert/filewise/pkg/types"
	"github.com/gobwas/glob"
	"github.com/rs/zerolog"
)

// Finder walks directory trees and filters entries by extension or
// glob-style patterns. All entry points return deduplicated,
// lexicographically sorted results. A Finder holds no state between
// calls other than its compiled-pattern cache.
type Finder struct {
	fs       types.FS
	compiler *Compiler
	logger   zerolog.Logger
}

// New creates a Finder backed by the OS filesystem
func New() *Finder {
	return NewWithFS(filesystem.NewOS())
}

// NewWithFS creates a Finder backed by a custom filesystem.
// This is used for testing and callers that need a different filesystem.
func NewWithFS(fs types.FS) *Finder {
	return &Finder{
		fs:       fs,
		compiler: NewCompiler(),
		logger:   logging.GetLogger("finder"),
	}
}

// Query holds the parameters shared by FindFiles and FindDirsWithFiles.
type Query struct {
	// Patterns are extensions or glob fragments, depending on MatchType.
	// Empty strings are dropped during normalization.
	Patterns []string

	// MatchType selects how Patterns are applied. Zero value is
	// MatchExtension, mirroring the library's historical default.
	MatchType MatchType

	// TopOnly restricts the search to the immediate children of the
	// search root; no recursion into subdirectories.
	TopOnly bool

	// ExcludeDirs drops any candidate whose path contains one of
	// these substrings. This is a literal substring check against the
	// whole path string, not a path-segment match: excluding "log"
	// also drops a file named "catalog.txt". Known over-matching
	// behavior, kept for compatibility.
	ExcludeDirs []string

	// IgnoreCase lowercases both base names and patterns before glob
	// or whole-word matching. Extension matching is always
	// case-insensitive regardless of this flag.
	IgnoreCase bool
}

// ItemsQuery holds the parameters for FindItems.
type ItemsQuery struct {
	// Task selects whether distinct extensions or directories are
	// collected. Zero value is TaskExtensions.
	Task Task

	// SkipExt lists extensions to omit from TaskExtensions results.
	// The leading dot is optional.
	SkipExt []string

	TopOnly     bool
	ExcludeDirs []string
}

// FindFiles returns the sorted, deduplicated paths of files under
// root that match the query. The match type is validated before any
// filesystem traversal occurs.
func (f *Finder) FindFiles(root string, q Query) ([]string, error) {
	m, err := f.newMatcher(q)
	if err != nil {
		return nil, err
	}

	items, err := f.collect(root, q.TopOnly)
	if err != nil {
		return nil, err
	}
	items = dropExcluded(items, q.ExcludeDirs)

	var files []string
	for _, item := range items {
		if m.matches(item) {
			files = append(files, item)
		}
	}

	f.logger.Debug().
		Str("root", root).
		Stringer("matchType", q.MatchType).
		Int("candidates", len(items)).
		Int("matches", len(files)).
		Msg("find files complete")

	return sortUnique(files), nil
}

// FindDirsWithFiles returns the sorted, deduplicated parent
// directories of every file under root that matches the query. A
// directory appears once even if it contains multiple matches.
func (f *Finder) FindDirsWithFiles(root string, q Query) ([]string, error) {
	m, err := f.newMatcher(q)
	if err != nil {
		return nil, err
	}

	items, err := f.collect(root, q.TopOnly)
	if err != nil {
		return nil, err
	}
	items = dropExcluded(items, q.ExcludeDirs)

	var dirs []string
	for _, item := range items {
		if m.matches(item) {
			dirs = append(dirs, filepath.Dir(item))
		}
	}

	f.logger.Debug().
		Str("root", root).
		Stringer("matchType", q.MatchType).
		Int("candidates", len(items)).
		Int("directories", len(dirs)).
		Msg("find dirs complete")

	return sortUnique(dirs), nil
}

// FindItems returns either the sorted set of file extensions present
// under root (minus the skip set) or the sorted set of directory
// paths, depending on the query's task. The task is validated before
// any filesystem traversal occurs.
func (f *Finder) FindItems(root string, q ItemsQuery) ([]string, error) {
	if !q.Task.valid() {
		return nil, errors.Newf(errors.ErrInvalidTask,
			"invalid task %q, choose one from: %s",
			q.Task, strings.Join(TaskNames(), ", "))
	}

	items, err := f.collect(root, q.TopOnly)
	if err != nil {
		return nil, err
	}
	items = dropExcluded(items, q.ExcludeDirs)

	var results []string
	switch q.Task {
	case TaskExtensions:
		skip := make(map[string]struct{}, len(q.SkipExt))
		for _, ext := range q.SkipExt {
			skip[normalizeExt(ext)] = struct{}{}
		}
		for _, item := range items {
			if !f.isFile(item) {
				continue
			}
			ext := filepath.Ext(item)
			if _, skipped := skip[ext]; skipped {
				continue
			}
			results = append(results, ext)
		}
	case TaskDirectories:
		for _, item := range items {
			if f.isDir(item) {
				results = append(results, item)
			}
		}
	}

	f.logger.Debug().
		Str("root", root).
		Stringer("task", q.Task).
		Int("candidates", len(items)).
		Int("results", len(results)).
		Msg("find items complete")

	return sortUnique(results), nil
}

// matcher tests candidate paths against one query's effective
// patterns. It is built once per call, after validation and pattern
// compilation, so every failure mode fires before traversal starts.
type matcher struct {
	f          *Finder
	mode       MatchType
	patterns   []string
	globs      []glob.Glob
	ignoreCase bool
}

func (f *Finder) newMatcher(q Query) (*matcher, error) {
	if !q.MatchType.valid() {
		return nil, errors.Newf(errors.ErrInvalidMatchType,
			"invalid match type %q, choose one from: %s",
			q.MatchType, strings.Join(MatchTypeNames(), ", "))
	}

	patterns := make([]string, 0, len(q.Patterns))
	for _, p := range q.Patterns {
		if p == "" {
			continue
		}
		if q.IgnoreCase && q.MatchType != MatchExtension {
			p = strings.ToLower(p)
		}
		patterns = append(patterns, p)
	}
	patterns = q.MatchType.transform(patterns)

	m := &matcher{
		f:          f,
		mode:       q.MatchType,
		patterns:   patterns,
		ignoreCase: q.IgnoreCase,
	}

	if q.MatchType.usesGlob() {
		m.globs = make([]glob.Glob, 0, len(patterns))
		for _, p := range patterns {
			g, err := f.compiler.Compile(p)
			if err != nil {
				return nil, err
			}
			m.globs = append(m.globs, g)
		}
	}

	return m, nil
}

// matches reports whether the candidate is a regular file matching
// one of the effective patterns. The file-vs-directory decision is a
// fresh stat per call; candidates that vanished or turned unreadable
// since discovery simply do not match.
func (m *matcher) matches(path string) bool {
	if !m.f.isFile(path) {
		return false
	}

	name := filepath.Base(path)
	if m.ignoreCase {
		name = strings.ToLower(name)
	}

	switch m.mode {
	case MatchExtension:
		ext := filepath.Ext(path)
		for _, p := range m.patterns {
			if strings.EqualFold(ext, normalizeExt(p)) {
				return true
			}
		}
	case MatchWholeWord:
		for _, p := range m.patterns {
			if name == p {
				return true
			}
		}
	default:
		for _, g := range m.globs {
			if g.Match(name) {
				return true
			}
		}
	}
	return false
}

func (f *Finder) isFile(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (f *Finder) isDir(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.IsDir()
}

// dropExcluded removes candidates whose path contains any exclusion
// substring. See Query.ExcludeDirs for the over-matching caveat.
func dropExcluded(items []string, excludes []string) []string {
	if len(excludes) == 0 {
		return items
	}
	kept := items[:0]
	for _, item := range items {
		excluded := false
		for _, sub := range excludes {
			if sub != "" && strings.Contains(item, sub) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, item)
		}
	}
	return kept
}

// normalizeExt ensures a non-empty extension carries its leading dot
func normalizeExt(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// sortUnique returns the items sorted ascending with duplicates removed
func sortUnique(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	sort.Strings(items)
	out := items[:1]
	for _, item := range items[1:] {
		if item != out[len(out)-1] {
			out = append(out, item)
		}
	}
	return out
}
