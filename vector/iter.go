package vector

import "iter"

// Begin and End bound the live positions: [Begin(), End()).
func (v *T[V]) Begin() int { return 0 }
func (v *T[V]) End() int   { return v.size }

// View returns the live elements as a slice sharing v's storage. Its
// capacity is clipped to Len() so appending to it never writes into v.
func (v *T[V]) View() []V { return v.items.Slice(0, v.size) }

func (v *T[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.items.Index(i)) {
				return
			}
		}
	}
}

func (v *T[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.items.Index(i)) {
				return
			}
		}
	}
}

// Pointers yields a pointer to each live element for in place updates.
func (v *T[V]) Pointers() iter.Seq2[int, *V] {
	return func(yield func(int, *V) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.items.Index(i)) {
				return
			}
		}
	}
}

func (v *T[V]) Backward() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.items.Index(i)) {
				return
			}
		}
	}
}
