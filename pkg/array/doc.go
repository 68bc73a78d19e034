// Package array provides a fixed-length generic container with bounds-checked
// element access.
//
// An Array's length is set at construction and never changes. It implements
// the stringify.Iterable extension point, so stringify.ToString renders it as
// "[e0, e1, ..., en]" like any slice.
package array
