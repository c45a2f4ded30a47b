package vector

import (
	"github.com/zeebo/errs/v2"

	"github.com/histdb/simplevec/buffer"
)

// T is a growable sequence of V. The zero value is an empty vector that has
// not allocated.
type T[V any] struct {
	_ [0]func() // no equality

	items    buffer.T[V]
	size     int
	cap      int
	reallocs uint64
}

// New returns an empty vector.
func New[V any]() *T[V] { return new(T[V]) }

// OfSize returns a vector of n zero values with capacity n.
func OfSize[V any](n int) *T[V] {
	var z V
	return Filled(n, z)
}

// Filled returns a vector holding n copies of x with capacity n.
func Filled[V any](n int, x V) *T[V] {
	if n < 0 {
		panic(violation("negative size %d", n))
	}
	v := &T[V]{items: buffer.Alloc[V](n), size: n, cap: n}
	s := v.items.Slice(0, n)
	for i := range s {
		s[i] = x
	}
	return v
}

// Of returns a vector holding copies of xs in order, with capacity len(xs).
func Of[V any](xs ...V) *T[V] {
	v := &T[V]{items: buffer.Alloc[V](len(xs)), size: len(xs), cap: len(xs)}
	copy(v.items.Slice(0, len(xs)), xs)
	return v
}

func (v *T[V]) Len() int    { return v.size }
func (v *T[V]) Cap() int    { return v.cap }
func (v *T[V]) Empty() bool { return v.size == 0 }

// Reallocs reports how many times growth replaced the backing buffer.
func (v *T[V]) Reallocs() uint64 { return v.reallocs }

func (v *T[V]) Size() uint64 {
	return 0 +
		/* items    */ v.items.Size() +
		/* size     */ 8 +
		/* cap      */ 8 +
		/* reallocs */ 8 +
		0
}

// install swaps nb in as the backing buffer and frees the old one.
func (v *T[V]) install(nb *buffer.T[V]) {
	v.items.Swap(nb)
	nb.Free()
	v.cap = v.items.Len()
	v.reallocs++
}

//
// value semantics
//

// Clone returns an independent copy with capacity equal to v's length.
func (v *T[V]) Clone() *T[V] {
	c := &T[V]{items: buffer.Alloc[V](v.size), size: v.size, cap: v.size}
	copy(c.items.Slice(0, v.size), v.items.Slice(0, v.size))
	return c
}

// Take moves v's contents into a new vector in constant time. v is left
// empty with no capacity.
func (v *T[V]) Take() *T[V] {
	n := new(T[V])
	n.MoveFrom(v)
	return n
}

// CopyFrom replaces v's contents with a copy of src. The copy is fully built
// before v is touched, so v is unchanged if building it panics.
func (v *T[V]) CopyFrom(src *T[V]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.items.Free()
}

// MoveFrom frees v's storage and takes over src's. src is left empty with
// no capacity.
func (v *T[V]) MoveFrom(src *T[V]) {
	if v == src {
		return
	}
	v.items.Move(&src.items)
	v.size, src.size = src.size, 0
	v.cap, src.cap = src.cap, 0
}

// Swap exchanges storage and lengths with o in constant time.
func (v *T[V]) Swap(o *T[V]) {
	v.items.Swap(&o.items)
	v.size, o.size = o.size, v.size
	v.cap, o.cap = o.cap, v.cap
}

//
// capacity and size
//

// Clear sets the length to zero. Capacity and stored values are kept.
func (v *T[V]) Clear() { v.size = 0 }

// Reserve grows the capacity to exactly n if it is currently smaller.
func (v *T[V]) Reserve(n int) {
	if n <= v.cap {
		return
	}
	nb := buffer.Alloc[V](n)
	copy(nb.Slice(0, v.size), v.items.Slice(0, v.size))
	v.install(&nb)
	v.checkInvariants()
}

// Resize sets the length to n. Shrinking keeps storage untouched. Growing
// within capacity zeroes the newly exposed slots. Growing past capacity
// reallocates to max(n, 2*Cap()).
func (v *T[V]) Resize(n int) {
	switch {
	case n < 0:
		panic(violation("negative size %d", n))

	case n <= v.size:
		v.size = n

	case n <= v.cap:
		clear(v.items.Slice(v.size, n))
		v.size = n

	default:
		nb := buffer.Alloc[V](max(n, v.cap*2))
		copy(nb.Slice(0, v.size), v.items.Slice(0, v.size))
		v.install(&nb)
		v.size = n
	}
	v.checkInvariants()
}

//
// access
//

// Index returns a pointer to element i without a bounds check. The caller
// guarantees 0 <= i < Len().
func (v *T[V]) Index(i int) *V {
	if debug && uint(i) >= uint(v.size) {
		panic(violation("index %d with length %d", i, v.size))
	}
	return v.items.Index(i)
}

// At returns a pointer to element i, or a *RangeError if i is outside
// [0, Len()).
func (v *T[V]) At(i int) (*V, error) {
	if uint(i) >= uint(v.size) {
		return nil, errs.Wrap(&RangeError{Index: i, Len: v.size})
	}
	return v.items.Index(i), nil
}

// Front and Back are unchecked: the vector must not be empty.
func (v *T[V]) Front() *V { return v.Index(0) }
func (v *T[V]) Back() *V  { return v.Index(v.size - 1) }

//
// mutation
//

// PushBack appends x, doubling the capacity when the vector is full.
func (v *T[V]) PushBack(x V) {
	if v.size < v.cap {
		*v.items.Index(v.size) = x
		v.size++
		return
	}
	v.Resize(v.cap + 1)
	*v.items.Index(v.size - 1) = x
}

// PopBack drops the last element. The slot keeps its value.
func (v *T[V]) PopBack() {
	if v.size == 0 {
		panic(violation("pop from empty vector"))
	}
	v.size--
}

// Insert places x at pos, shifting later elements right, and returns the
// position of x. pos must be within [Begin(), End()].
func (v *T[V]) Insert(pos int, x V) int {
	if uint(pos) > uint(v.size) {
		panic(violation("insert at %d with length %d", pos, v.size))
	}

	if v.size < v.cap {
		s := v.items.Slice(0, v.size+1)
		copy(s[pos+1:], s[pos:v.size])
		s[pos] = x
	} else {
		nb := buffer.Alloc[V](max(v.size+1, v.cap*2))
		s := nb.Slice(0, v.size+1)
		copy(s, v.items.Slice(0, pos))
		s[pos] = x
		copy(s[pos+1:], v.items.Slice(pos, v.size))
		v.install(&nb)
	}

	v.size++
	v.checkInvariants()
	return pos
}

// Erase removes the element at pos, shifting later elements left, and
// returns the position now holding the following element (End() if pos was
// the last). pos must be within [Begin(), End()).
func (v *T[V]) Erase(pos int) int {
	if uint(pos) >= uint(v.size) {
		panic(violation("erase at %d with length %d", pos, v.size))
	}

	s := v.items.Slice(0, v.size)
	copy(s[pos:], s[pos+1:])
	v.size--
	v.checkInvariants()
	return pos
}
