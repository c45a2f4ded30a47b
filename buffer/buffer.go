package buffer

import (
	"unsafe"

	"github.com/histdb/simplevec/sizeof"
)

type ptr = unsafe.Pointer

//
// sole owner of a fixed length block :sonic:
//

// T owns a block of Len() elements, or nothing. The zero value is empty.
// A T must not be copied by value once it owns a block: ownership moves
// only through Take, Move, Swap and Release.
type T[V any] struct {
	_ [0]func() // no equality

	s []V
}

// Alloc returns a buffer owning exactly n zero valued elements. When n is
// zero nothing is allocated.
func Alloc[V any](n int) T[V] {
	if n < 0 {
		panic("buffer: negative allocation")
	} else if n == 0 {
		return T[V]{}
	}
	return T[V]{s: make([]V, n)}
}

// Adopt takes ownership of block. The caller must not use block afterward.
func Adopt[V any](block []V) T[V] {
	if cap(block) == 0 {
		return T[V]{}
	}
	return T[V]{s: block[:cap(block)]}
}

func (b *T[V]) Len() int    { return len(b.s) }
func (b *T[V]) Valid() bool { return b.s != nil }

func (b *T[V]) Size() uint64 {
	return 0 +
		/* s */ sizeof.Slice(b.s) +
		0
}

// Raw returns the address of the first element or nil if empty.
func (b *T[V]) Raw() *V { return unsafe.SliceData(b.s) }

// Index returns a pointer to element i without any bounds check. The
// caller guarantees 0 <= i < Len().
func (b *T[V]) Index(i int) *V {
	return (*V)(unsafe.Add(ptr(unsafe.SliceData(b.s)), uintptr(i)*unsafe.Sizeof(*new(V))))
}

// Slice returns the elements [lo, hi) of the block.
func (b *T[V]) Slice(lo, hi int) []V { return b.s[lo:hi:hi] }

// Release gives up ownership of the block and returns it. The result must
// be kept by the caller: the buffer no longer refers to it.
func (b *T[V]) Release() []V {
	s := b.s
	b.s = nil
	return s
}

// Swap exchanges blocks with o. It never allocates.
func (b *T[V]) Swap(o *T[V]) { b.s, o.s = o.s, b.s }

// Take moves the block into a new buffer, leaving b empty.
func (b *T[V]) Take() (n T[V]) {
	n.s, b.s = b.s, nil
	return n
}

// Move frees the current block and takes ownership of from's block,
// leaving from empty.
func (b *T[V]) Move(from *T[V]) {
	if b == from {
		return
	}
	b.Free()
	b.s, from.s = from.s, nil
}

// Free drops the owned block. Calling it on an empty buffer does nothing.
func (b *T[V]) Free() { b.s = nil }
