package container

import "golang.org/x/exp/constraints"

// Addable is the set of element types the + operator accepts: all integer,
// float and complex types, and string-kind types (for which Sum concatenates).
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// IsEmpty reports whether c holds zero elements. A nil slice is empty.
func IsEmpty[S ~[]E, E any](c S) bool {
	return len(c) == 0
}

// Sum returns the accumulated total of all elements of c. An empty slice
// yields the zero value of the element type. Otherwise the accumulator is
// seeded with the first element rather than a numeric zero, so the result
// never assumes an additive identity beyond what the element type defines.
func Sum[S ~[]E, E Addable](c S) E {
	if len(c) == 0 {
		var zero E
		return zero
	}

	total := c[0]
	for _, e := range c[1:] {
		total += e
	}
	return total
}
