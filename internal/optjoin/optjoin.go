// Package optjoin concatenates already-formed option strings into one
// comma-separated string.
package optjoin

import "strings"

// Join joins tokens with commas in the order given. Tokens are opaque: they
// are neither validated nor escaped.
func Join(tokens []string) string {
	return strings.Join(tokens, ",")
}
