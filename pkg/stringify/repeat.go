package stringify

import "strings"

// Repeat returns pattern concatenated with itself n times.
// Any n <= 0 yields the empty string.
func Repeat(pattern string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(pattern, n)
}

// RepeatN is the symmetric complement of Repeat for callers that read
// "repeat 10 times" rather than "repeat the pattern". Both forms behave
// identically.
func RepeatN(n int, pattern string) string {
	return Repeat(pattern, n)
}
