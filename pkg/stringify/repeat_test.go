package stringify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/zenkit/pkg/stringify"
)

func TestRepeat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "**********", stringify.Repeat("*", 10))
	assert.Equal(t, "ababab", stringify.Repeat("ab", 3))
	assert.Equal(t, "", stringify.Repeat("*", 0))
	assert.Equal(t, "", stringify.Repeat("*", -3))
	assert.Equal(t, "", stringify.Repeat("", 5))
}

func TestRepeatNSymmetry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, stringify.Repeat("*", 10), stringify.RepeatN(10, "*"))
	assert.Equal(t, stringify.Repeat("ab", 0), stringify.RepeatN(0, "ab"))
	assert.Equal(t, stringify.Repeat("x", 7), stringify.RepeatN(7, "x"))
}
