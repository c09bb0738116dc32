package keynorm

import "strings"

// keynorm canonicalizes identifier strings before they are used on either
// side of a join. Every source applies the same functions, otherwise
// formatting differences between uploads silently break matches.

// MatchKey returns the canonical form of a single identifier: uppercase with
// leading/trailing whitespace removed. Idempotent.
func MatchKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// RowKey builds a composite key from its parts: each part is MatchKey'd,
// stripped of internal whitespace and "-" separators, then concatenated in
// argument order. Producers and consumers of a composite key must both go
// through RowKey so the concatenation order can never drift.
func RowKey(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(stripSeparators(MatchKey(p)))
	}
	return b.String()
}

func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '-':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
