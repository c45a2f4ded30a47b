package vector

import (
	"github.com/zeebo/errs/v2"

	"github.com/histdb/simplevec/buffer"
	"github.com/histdb/simplevec/rwutils"
)

// RW constrains P to be a pointer to V that can encode and decode itself.
type RW[V any] interface {
	*V
	rwutils.RW
}

// AppendTo writes the length of v followed by each live element.
func AppendTo[V any, P RW[V]](v *T[V], w *rwutils.W) {
	w.Varint(uint64(v.size))
	for i := 0; i < v.size; i++ {
		P(v.items.Index(i)).AppendTo(w)
	}
}

// ReadFrom decodes a vector written by AppendTo into v, with capacity equal
// to the decoded length. v is only replaced once every element decoded: on
// a read error v is unchanged and r reports the failure.
//
// Every element is assumed to encode to at least one byte.
func ReadFrom[V any, P RW[V]](v *T[V], r *rwutils.R) {
	n := r.Varint()
	if r.Err() != nil {
		return
	} else if n > uint64(r.Remaining()) {
		r.Invalid(errs.Errorf("vector has too many elements: %d", n))
		return
	}

	nb := buffer.Alloc[V](int(n))
	for i := 0; i < int(n); i++ {
		P(nb.Index(i)).ReadFrom(r)
	}
	if r.Err() != nil {
		return
	}

	v.install(&nb)
	v.size = int(n)
	v.checkInvariants()
}
