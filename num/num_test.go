package num

import (
	"bytes"
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/simplevec/rwutils"
)

func roundTrip[V any, P interface {
	*V
	rwutils.RW
}](t *testing.T, vs ...V) {
	var out bytes.Buffer
	var w rwutils.W
	w.Init(&out, nil)
	for i := range vs {
		P(&vs[i]).AppendTo(&w)
	}
	assert.NoError(t, w.Done())

	var r rwutils.R
	r.Init(out.Bytes())
	for _, v := range vs {
		var got V
		P(&got).ReadFrom(&r)
		assert.DeepEqual(t, got, v)
	}
	rem, err := r.Done()
	assert.NoError(t, err)
	assert.Equal(t, len(rem), 0)
}

func TestRoundTrip(t *testing.T) {
	roundTrip(t, U64(0), U64(1), U64(1<<63))
	roundTrip(t, U32(0), U32(1<<31))
	roundTrip(t, U16(7), U16(1<<15))
	roundTrip(t, U8(0), U8(255))
	roundTrip(t, I64(0), I64(-1), I64(1), I64(-1<<63), I64(1<<63-1))
	roundTrip(t, Str(""), Str("hello"), Str("\x00\xff"))
}

func TestStrTruncated(t *testing.T) {
	var out bytes.Buffer
	var w rwutils.W
	w.Init(&out, nil)
	Str("hello").AppendTo(&w)
	assert.NoError(t, w.Done())

	var r rwutils.R
	r.Init(out.Bytes()[:3])

	var s Str
	s.ReadFrom(&r)
	assert.Error(t, r.Err())
	assert.Equal(t, s, Str(""))
}
