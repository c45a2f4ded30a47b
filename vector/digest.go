package vector

import (
	"github.com/zeebo/xxh3"

	"github.com/histdb/simplevec/rwutils"
)

// Digest hashes the encoded form of v. Vectors that are Equal have the
// same digest regardless of capacity.
func Digest[V any, P RW[V]](v *T[V]) uint64 {
	var (
		h   = xxh3.New()
		buf [256]byte
		w   rwutils.W
	)

	w.Init(h, buf[:])
	AppendTo[V, P](v, &w)
	_ = w.Done() // hasher writes do not fail

	return h.Sum64()
}
