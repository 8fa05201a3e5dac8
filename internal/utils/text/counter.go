// Package text holds rune-aware string helpers for display output.
package text

import "strings"

// CountRunes counts Unicode characters, not bytes.
func CountRunes(text string) int {
	return len([]rune(text))
}

// Excerpt shortens text to at most limit runes, appending "..." when it cuts.
// Newlines collapse to spaces so an excerpt always fits on one line.
func Excerpt(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	if limit <= 0 || CountRunes(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:limit]), " ") + "..."
}
