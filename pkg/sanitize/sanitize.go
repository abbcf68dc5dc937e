// Package sanitize strips control bytes out of extracted document text before
// it is embedded or persisted. Postgres rejects text containing NUL bytes, and
// PDF extraction regularly produces them.
package sanitize

import (
	"fmt"
	"strings"
)

// forbidden reports whether r is one of the control characters that must not
// reach the vector store: [0x00-0x08], [0x0B-0x0C], [0x0E-0x1F].
func forbidden(r rune) bool {
	switch {
	case r <= 0x08:
		return true
	case r == 0x0B || r == 0x0C:
		return true
	case r >= 0x0E && r <= 0x1F:
		return true
	}
	return false
}

// Text replaces every forbidden control character with a single space.
// It is idempotent: spaces are never forbidden, so a second pass is a no-op.
func Text(s string) string {
	return strings.Map(func(r rune) rune {
		if forbidden(r) {
			return ' '
		}
		return r
	}, s)
}

// Value coerces non-string values to their string form before cleaning.
func Value(v any) string {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprintf("%v", v)
	}
	return Text(s)
}

// Metadata returns a copy of m with every string value cleaned. Non-string
// values (page numbers, scores) pass through untouched.
func Metadata(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = Text(s)
			continue
		}
		out[k] = v
	}
	return out
}
