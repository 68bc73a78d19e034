// Package stringify renders arbitrary values as human-readable text and
// writes them to an output sink.
//
// The package follows a three-layer model: ToString turns values into text,
// Print writes that text to the sink, and Log does the same but terminates
// the line. Every higher layer is defined purely in terms of the one below
// it, so all three produce consistent output for the same arguments.
//
// # Value Classification
//
// Each value is classified into exactly one of three categories, in order:
//
//   - string-like: a string (or any type whose kind is string) is returned
//     verbatim, without quoting or escaping
//   - iterable: a slice, an array, or any value implementing Iterable is
//     rendered as "[e0, e1, ..., en]" with each element classified the same
//     way, to arbitrary nesting depth; an empty or nil sequence renders "[]"
//   - scalar: everything else is rendered through its default textual form
//     (fmt.Stringer implementations are honored)
//
// Classification is evaluated identically at every recursion depth, so nested
// containers render deterministically.
//
// # Usage
//
// Python-style printing with mixed argument types:
//
//	v := []int{1, 2, 3}
//	stringify.Log("Hello", "World", v, 42)
//	// Output: Hello World [1, 2, 3] 42
//
// Pure string conversion:
//
//	stringify.ToString([][]int{{1, 2}, {3}}) // "[[1, 2], [3]]"
//	stringify.ToString(1, 2, 3)              // "1 2 3"
//	stringify.ToString()                     // ""
//
// Custom containers opt into list rendering by implementing Iterable:
//
//	a := array.Of(1, 2, 3, 4, 5)
//	stringify.ToString(a) // "[1, 2, 3, 4, 5]"
//
// # Output Sink
//
// Print and Log write to a single package-level sink, os.Stdout by default.
// SetOutput replaces it; Fprint and Flog accept an explicit io.Writer for
// callers that manage their own sinks. Write errors are deliberately
// discarded: the package has no error-reporting channel.
//
// # Limitations
//
// The sink variable and writes to it are unsynchronized; interleaving under
// concurrent use is undefined. ToString does not detect cycles, so
// self-referential structures recurse without bound. Map values render as
// scalars because Go randomizes map iteration order, which would break
// deterministic output.
package stringify
