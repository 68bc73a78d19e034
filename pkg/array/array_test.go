package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/zenkit/pkg/array"
	"github.com/dmitrymomot/zenkit/pkg/container"
	"github.com/dmitrymomot/zenkit/pkg/stringify"
)

func TestOf(t *testing.T) {
	t.Parallel()

	a := array.Of(1, 2, 3, 4, 5)
	require.Equal(t, 5, a.Len())
	assert.Equal(t, 1, a.At(0))
	assert.Equal(t, 5, a.At(4))
	assert.False(t, a.IsEmpty())
}

func TestNew(t *testing.T) {
	t.Parallel()

	a := array.New[string](3)
	require.Equal(t, 3, a.Len())
	assert.Equal(t, "", a.At(0), "New fills with zero values")
}

func TestSet(t *testing.T) {
	t.Parallel()

	a := array.Of(1, 2, 3)
	a.Set(1, 42)
	assert.Equal(t, []int{1, 42, 3}, a.Slice())
}

func TestBoundsChecks(t *testing.T) {
	t.Parallel()

	a := array.Of(1, 2, 3)
	assert.Panics(t, func() { a.At(3) })
	assert.Panics(t, func() { a.At(-1) })
	assert.Panics(t, func() { a.Set(3, 0) })
}

func TestContains(t *testing.T) {
	t.Parallel()

	a := array.Of(1, 2, 3, 4, 5)
	assert.True(t, a.Contains(5))
	assert.False(t, a.Contains(6))
}

func TestIsEmptyMatchesContainerHelper(t *testing.T) {
	t.Parallel()

	a := array.Of(1, 2, 3, 4, 5)
	assert.Equal(t, a.IsEmpty(), container.IsEmpty(a.Slice()))

	empty := array.Of[int]()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, empty.IsEmpty(), container.IsEmpty(empty.Slice()))
}

func TestSliceIsACopy(t *testing.T) {
	t.Parallel()

	a := array.Of(1, 2, 3)
	s := a.Slice()
	s[0] = 99
	assert.Equal(t, 1, a.At(0), "mutating the returned slice must not touch the array")
}

func TestStringifiesAsIterable(t *testing.T) {
	t.Parallel()

	a := array.Of(1, 2, 3, 4, 5)
	assert.Equal(t, "[1, 2, 3, 4, 5]", stringify.ToString(a))
	assert.Equal(t, "ARRAY: [1, 2, 3, 4, 5]", stringify.ToString("ARRAY:", a))
	assert.Equal(t, "[]", stringify.ToString(array.Of[int]()))
}
