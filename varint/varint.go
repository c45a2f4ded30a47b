package varint

import (
	"encoding/binary"
	"math/bits"
)

var le = binary.LittleEndian

//
// prefix varint: the count of trailing one bits in the first byte, plus
// one, is the encoded length
//

// MaxLen is the longest encoding.
const MaxLen = 9

// Append encodes val into dst and returns how many bytes were used.
func Append(dst *[MaxLen]byte, val uint64) (nbytes uintptr) {
	nbytes = 575*uintptr(bits.Len64(val))/4096 + 1

	if nbytes < MaxLen {
		enc := val<<nbytes + 1<<((nbytes-1)&63) - 1
		le.PutUint64(dst[:], enc)
		return
	}

	dst[0] = 0xff
	le.PutUint64(dst[1:], val)
	return
}

// FastConsume decodes from a full 9 byte window. Bytes past the encoded
// length are ignored.
func FastConsume(src *[MaxLen]byte) (nbytes uintptr, dec uint64) {
	nbytes = uintptr(bits.TrailingZeros8(^src[0])) + 1

	if nbytes < MaxLen {
		dec = le.Uint64(src[:]) >> nbytes
		dec &= 1<<((8*nbytes-nbytes)&63) - 1
		return
	}

	dec = le.Uint64(src[1:])
	return
}

// Consume decodes a value from the front of buf and returns the rest. It
// reports false if buf is empty or holds a truncated encoding.
func Consume(buf []byte) (uint64, []byte, bool) {
	if len(buf) >= MaxLen {
		nbytes, dec := FastConsume((*[MaxLen]byte)(buf))
		return dec, buf[nbytes:], true
	} else if len(buf) == 0 {
		return 0, buf, false
	}

	// short tail: decode from a zero padded copy so nothing reads past buf
	nbytes := uintptr(bits.TrailingZeros8(^buf[0])) + 1
	if nbytes > uintptr(len(buf)) {
		return 0, buf, false
	}

	var tmp [MaxLen]byte
	copy(tmp[:], buf[:nbytes])
	_, dec := FastConsume(&tmp)
	return dec, buf[nbytes:], true
}
