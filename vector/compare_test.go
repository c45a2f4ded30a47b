package vector

import (
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

func TestEqual(t *testing.T) {
	a := Of(1, 2, 3)
	assert.That(t, Equal(a, a))
	assert.That(t, Equal(a, Of(1, 2, 3)))
	assert.That(t, NotEqual(a, Of(1, 2)))
	assert.That(t, NotEqual(a, Of(1, 2, 4)))
	assert.That(t, Equal(New[int](), New[int]()))

	// capacity does not matter
	b := Of(1, 2, 3)
	b.Reserve(100)
	assert.That(t, Equal(a, b))

	// neither do dead slots
	c := Of(1, 2, 3, 4)
	c.PopBack()
	assert.That(t, Equal(a, c))
}

func TestEqualFunc(t *testing.T) {
	a := Of("a", "B")
	b := Of("A", "b")
	assert.That(t, EqualFunc(a, b, strings.EqualFold))
	assert.That(t, !EqualFunc(a, Of("a"), strings.EqualFold))
}

func TestOrdering(t *testing.T) {
	cases := []struct {
		a, b *T[int]
		cmp  int
	}{
		{Of(1, 2, 3), Of(1, 2, 3), 0},
		{Of(1, 2), Of(1, 2, 3), -1},
		{Of(1, 2, 4), Of(1, 2, 3), 1},
		{New[int](), Of(0), -1},
		{Of(2), Of(1, 9, 9), 1},
		{New[int](), New[int](), 0},
	}

	for _, c := range cases {
		assert.Equal(t, Compare(c.a, c.b), c.cmp)
		assert.Equal(t, Compare(c.b, c.a), -c.cmp)

		assert.Equal(t, Less(c.a, c.b), c.cmp < 0)
		assert.Equal(t, LessEqual(c.a, c.b), c.cmp <= 0)
		assert.Equal(t, Greater(c.a, c.b), c.cmp > 0)
		assert.Equal(t, GreaterEqual(c.a, c.b), c.cmp >= 0)
		assert.Equal(t, Equal(c.a, c.b), c.cmp == 0)
	}

	a := Of(5)
	assert.Equal(t, Compare(a, a), 0)
}

func TestCompareFunc(t *testing.T) {
	byLen := func(a, b string) int { return len(a) - len(b) }
	assert.That(t, CompareFunc(Of("aa", "b"), Of("cc", "dd"), byLen) < 0)
	assert.Equal(t, CompareFunc(Of("aa"), Of("bb"), byLen), 0)
}
