package vector

import "github.com/histdb/simplevec/buffer"

// Request carries a capacity to preallocate. Build one with Reserve.
type Request struct {
	n int
}

// Reserve returns a Request for n elements.
func Reserve(n int) Request { return Request{n: n} }

func (r Request) Capacity() int { return r.n }

// WithCapacity returns an empty vector with exactly r.Capacity() slots
// allocated.
func WithCapacity[V any](r Request) *T[V] {
	if r.n < 0 {
		panic(violation("negative capacity %d", r.n))
	}
	return &T[V]{items: buffer.Alloc[V](r.n), cap: r.n}
}
