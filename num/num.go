package num

import (
	"github.com/zeebo/errs/v2"

	"github.com/histdb/simplevec/rwutils"
)

// Element types with a fixed width little endian encoding. A pointer to
// each satisfies rwutils.RW, so vectors of them can be serialized.

type U64 uint64

func (u U64) Digest() uint64         { return uint64(u) }
func (u *U64) ReadFrom(r *rwutils.R) { *u = U64(r.Uint64()) }
func (u U64) AppendTo(w *rwutils.W)  { w.Uint64(uint64(u)) }

type U32 uint32

func (u U32) Digest() uint64         { return uint64(u) }
func (u *U32) ReadFrom(r *rwutils.R) { *u = U32(r.Uint32()) }
func (u U32) AppendTo(w *rwutils.W)  { w.Uint32(uint32(u)) }

type U16 uint16

func (u U16) Digest() uint64         { return uint64(u) }
func (u *U16) ReadFrom(r *rwutils.R) { *u = U16(r.Uint16()) }
func (u U16) AppendTo(w *rwutils.W)  { w.Uint16(uint16(u)) }

type U8 uint8

func (u U8) Digest() uint64         { return uint64(u) }
func (u *U8) ReadFrom(r *rwutils.R) { *u = U8(r.Uint8()) }
func (u U8) AppendTo(w *rwutils.W)  { w.Uint8(uint8(u)) }

// I64 is zigzag varint encoded so small magnitudes stay small.
type I64 int64

func (i I64) Digest() uint64 { return uint64(i) }

func (i *I64) ReadFrom(r *rwutils.R) {
	u := r.Varint()
	*i = I64(int64(u>>1) ^ -int64(u&1))
}

func (i I64) AppendTo(w *rwutils.W) {
	w.Varint(uint64(i<<1) ^ uint64(i>>63))
}

// Str is a varint length prefixed string.
type Str string

func (s *Str) ReadFrom(r *rwutils.R) {
	n := r.Varint()
	if n > uint64(r.Remaining()) {
		r.Invalid(errs.Errorf("string longer than remaining data: %d", n))
		return
	}
	*s = Str(r.Bytes(int(n)))
}

func (s Str) AppendTo(w *rwutils.W) {
	w.Varint(uint64(len(s)))
	w.Bytes([]byte(s))
}
