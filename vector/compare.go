package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal elements in
// order.
func Equal[V comparable](a, b *T[V]) bool {
	if a == b {
		return true
	}
	return slices.Equal(a.View(), b.View())
}

func NotEqual[V comparable](a, b *T[V]) bool { return !Equal(a, b) }

// EqualFunc is Equal with a caller provided element comparison.
func EqualFunc[V, W any](a *T[V], b *T[W], eq func(V, W) bool) bool {
	return slices.EqualFunc(a.View(), b.View(), eq)
}

// Compare orders a and b lexicographically, returning -1, 0 or +1. A vector
// that is a prefix of the other sorts first.
func Compare[V cmp.Ordered](a, b *T[V]) int {
	if a == b {
		return 0
	}
	return slices.Compare(a.View(), b.View())
}

// CompareFunc is Compare with a caller provided element ordering.
func CompareFunc[V, W any](a *T[V], b *T[W], c func(V, W) int) int {
	return slices.CompareFunc(a.View(), b.View(), c)
}

func Less[V cmp.Ordered](a, b *T[V]) bool         { return Compare(a, b) < 0 }
func LessEqual[V cmp.Ordered](a, b *T[V]) bool    { return Compare(a, b) <= 0 }
func Greater[V cmp.Ordered](a, b *T[V]) bool      { return Compare(a, b) > 0 }
func GreaterEqual[V cmp.Ordered](a, b *T[V]) bool { return Compare(a, b) >= 0 }
