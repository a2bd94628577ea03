package textfold

import "strings"

// Fold normalizes free text for storage and comparison: trims surrounding
// whitespace, collapses internal runs of whitespace, and lower-cases.
func Fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
