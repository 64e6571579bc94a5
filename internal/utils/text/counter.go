// Package text provides small utilities for text processing shared by the
// generation providers.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Counting runes instead of bytes keeps length logging consistent for
// multi-byte characters.
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
