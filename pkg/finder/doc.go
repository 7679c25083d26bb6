// Package finder implements file discovery with extension, glob and
// whole-word matching over a directory tree.
//
// A Finder walks a root (recursively, or top level only), drops
// candidates whose paths contain exclusion substrings, and matches
// the survivors' base names against the caller's patterns. Glob
// fragments are compiled once and memoized in a bounded LRU cache.
// Every public entry point returns a deduplicated, lexicographically
// sorted slice.
//
// The five match modes and their pattern transforms:
//
//	ext         extension equality, case-insensitive, dot optional
//	glob_left   *pattern   (names ending with the pattern)
//	glob_right  pattern*   (names starting with the pattern)
//	glob_both   *pattern*  (pattern anywhere in the name)
//	ww          exact base-name equality
package finder
