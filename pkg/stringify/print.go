package stringify

import (
	"io"
	"os"
)

// Package output sink. Unsynchronized: callers that print from multiple
// goroutines get interleaved output in undefined order.
var out io.Writer = os.Stdout

// SetOutput replaces the package output sink used by Print and Log.
// The default sink is os.Stdout.
func SetOutput(w io.Writer) {
	out = w
}

// Print writes the space-joined textual form of args to the package sink.
// Nothing is appended after the last argument. Write errors are discarded.
func Print(args ...any) {
	Fprint(out, args...)
}

// Log writes like Print and terminates the line with a single newline.
// With zero arguments it emits only the newline.
func Log(args ...any) {
	Flog(out, args...)
}

// Fprint writes the space-joined textual form of args to w.
// Write errors are discarded.
func Fprint(w io.Writer, args ...any) {
	_, _ = io.WriteString(w, ToString(args...))
}

// Flog writes like Fprint and appends a single newline.
func Flog(w io.Writer, args ...any) {
	Fprint(w, args...)
	_, _ = io.WriteString(w, "\n")
}
