package rwutils

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/errs/v2"

	"github.com/histdb/simplevec/varint"
)

var le = binary.LittleEndian

// RW is implemented by pointers to element types that know their own
// encoding.
type RW interface {
	AppendTo(w *W)
	ReadFrom(r *R)
}

// W buffers little endian and varint encodings into an io.Writer. The first
// write error is kept and reported by Done.
type W struct {
	buf []byte
	err error
	w   io.Writer
}

func (w *W) Init(wr io.Writer, buf []byte) {
	*w = W{
		buf: buf[:0],
		w:   wr,
	}
}

func (w *W) Done() error {
	w.flush()
	return w.err
}

func (w *W) Uint64(x uint64) {
	if len(w.buf)+8 > cap(w.buf) {
		w.flush()
	}
	w.buf = le.AppendUint64(w.buf, x)
}

func (w *W) Uint32(x uint32) {
	if len(w.buf)+4 > cap(w.buf) {
		w.flush()
	}
	w.buf = le.AppendUint32(w.buf, x)
}

func (w *W) Uint16(x uint16) {
	if len(w.buf)+2 > cap(w.buf) {
		w.flush()
	}
	w.buf = le.AppendUint16(w.buf, x)
}

func (w *W) Uint8(x uint8) {
	if len(w.buf)+1 > cap(w.buf) {
		w.flush()
	}
	w.buf = append(w.buf, x)
}

func (w *W) Varint(x uint64) {
	var tmp [varint.MaxLen]byte
	w.Bytes(tmp[:varint.Append(&tmp, x)])
}

func (w *W) Bytes(buf []byte) {
	if len(w.buf)+len(buf) > cap(w.buf) {
		w.flush()
		if len(buf) > cap(w.buf) {
			if w.err == nil {
				_, w.err = w.w.Write(buf)
			}
			return
		}
	}
	w.buf = append(w.buf, buf...)
}

//go:noinline
func (w *W) flush() {
	if w.err == nil && len(w.buf) > 0 {
		_, w.err = w.w.Write(w.buf)
	}
	w.buf = w.buf[:0]
}

// R decodes from a byte slice. Once a read fails every later read returns
// zero values and Err reports the first failure.
type R struct {
	buf []byte
	err error
}

func (r *R) Init(buf []byte) {
	*r = R{
		buf: buf,
	}
}

// Done returns the unread bytes and the first error.
func (r *R) Done() ([]byte, error) {
	return r.buf, r.err
}

func (r *R) Err() error     { return r.err }
func (r *R) Remaining() int { return len(r.buf) }

// Invalid marks the stream as corrupt with err unless it already failed.
func (r *R) Invalid(err error) {
	if r.err == nil {
		r.err = err
		r.buf = r.buf[len(r.buf):]
	}
}

func (r *R) Uint64() (x uint64) {
	if r.err == nil {
		if len(r.buf) >= 8 {
			x = le.Uint64(r.buf)
			r.buf = r.buf[8:]
		} else {
			r.bad(8)
		}
	}
	return
}

func (r *R) Uint32() (x uint32) {
	if r.err == nil {
		if len(r.buf) >= 4 {
			x = le.Uint32(r.buf)
			r.buf = r.buf[4:]
		} else {
			r.bad(4)
		}
	}
	return
}

func (r *R) Uint16() (x uint16) {
	if r.err == nil {
		if len(r.buf) >= 2 {
			x = le.Uint16(r.buf)
			r.buf = r.buf[2:]
		} else {
			r.bad(2)
		}
	}
	return
}

func (r *R) Uint8() (x uint8) {
	if r.err == nil {
		if len(r.buf) >= 1 {
			x = r.buf[0]
			r.buf = r.buf[1:]
		} else {
			r.bad(1)
		}
	}
	return
}

func (r *R) Varint() (x uint64) {
	if r.err == nil {
		var ok bool
		x, r.buf, ok = varint.Consume(r.buf)
		if !ok {
			r.Invalid(errs.Errorf("short buffer: truncated varint"))
		}
	}
	return
}

func (r *R) Bytes(n int) (x []byte) {
	if r.err == nil {
		if n >= 0 && len(r.buf) >= n {
			x = r.buf[:n:n]
			r.buf = r.buf[n:]
		} else {
			r.bad(n)
		}
	}
	return
}

func (r *R) bad(n int) {
	r.Invalid(errs.Errorf("short buffer: needed %d bytes", n))
}
