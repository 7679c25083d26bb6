// Package utils holds small shared helpers.
package utils

import (
	"fmt"
	"strings"
)

// Flatten normalizes a value that may be a single string or an
// arbitrarily nested list of strings into a flat, order-preserving
// slice. Config files and callers are allowed to pass patterns and
// exclusion lists in either shape; normalization happens once, at the
// API boundary, so the rest of the code only ever sees flat slices.
func Flatten(value interface{}) []string {
	if value == nil {
		return nil
	}
	var out []string
	appendFlat(&out, value)
	return out
}

func appendFlat(out *[]string, value interface{}) {
	switch v := value.(type) {
	case string:
		*out = append(*out, v)
	case []string:
		*out = append(*out, v...)
	case []interface{}:
		for _, item := range v {
			appendFlat(out, item)
		}
	case fmt.Stringer:
		*out = append(*out, v.String())
	default:
		*out = append(*out, fmt.Sprintf("%v", v))
	}
}

// SplitList splits comma-separated values out of a slice of raw CLI
// flag values, trimming whitespace and dropping empties. Both
// --exclude a --exclude b and --exclude a,b yield the same result.
func SplitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
