// Package ident implements case-insensitive identifier comparison and
// lookup, the convention ObjectIR uses for class names, member names, and
// qualified-name suffix matching.
package ident

import "strings"

// Normalize folds s to its case-insensitive canonical form. Normalize is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.ToLower(s)
}

// Equal reports whether a and b are the same identifier, ignoring case.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Compare orders a and b case-insensitively. It returns a negative number
// if a sorts before b, zero if they are equal, and a positive number
// otherwise. Compare never mutates its arguments; callers sorting a slice
// of identifiers with Compare keep the original casing of every element.
func Compare(a, b string) int {
	return strings.Compare(Normalize(a), Normalize(b))
}

// Contains reports whether slice holds search, ignoring case.
func Contains(slice []string, search string) bool {
	return Index(slice, search) >= 0
}

// Index returns the index of the first element of slice equal to search
// under case-insensitive comparison, or -1 if none matches.
func Index(slice []string, search string) int {
	for i, s := range slice {
		if Equal(s, search) {
			return i
		}
	}
	return -1
}

// IsKeyword reports whether s matches any of keywords, ignoring case. It
// is a thin, intention-revealing wrapper over Contains for call sites that
// check identifiers against a reserved-word list.
func IsKeyword(s string, keywords ...string) bool {
	return Contains(keywords, s)
}
