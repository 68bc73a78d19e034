package array

import (
	"fmt"
	"slices"
)

// Array is a fixed-length container. The zero value is an empty array;
// use Of or New to build one with capacity.
type Array[T comparable] struct {
	items []T
}

// Of builds an Array holding exactly the given elements.
func Of[T comparable](elems ...T) *Array[T] {
	return &Array[T]{items: slices.Clone(elems)}
}

// New builds an Array of n zero-valued elements.
func New[T comparable](n int) *Array[T] {
	return &Array[T]{items: make([]T, n)}
}

// Len returns the fixed length of the array.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// IsEmpty reports whether the array holds zero elements.
func (a *Array[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// At returns the element at index i. It panics if i is out of range.
func (a *Array[T]) At(i int) T {
	a.check(i)
	return a.items[i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (a *Array[T]) Set(i int, v T) {
	a.check(i)
	a.items[i] = v
}

// Contains reports whether v equals any element of the array.
func (a *Array[T]) Contains(v T) bool {
	return slices.Contains(a.items, v)
}

// Slice returns a copy of the array's elements.
func (a *Array[T]) Slice() []T {
	return slices.Clone(a.items)
}

// Elements implements stringify.Iterable, exposing the elements in order so
// the array renders as a bracketed list.
func (a *Array[T]) Elements() []any {
	elems := make([]any, len(a.items))
	for i, v := range a.items {
		elems[i] = v
	}
	return elems
}

func (a *Array[T]) check(i int) {
	if i < 0 || i >= len(a.items) {
		panic(fmt.Sprintf("array: index %d out of range [0, %d)", i, len(a.items)))
	}
}
