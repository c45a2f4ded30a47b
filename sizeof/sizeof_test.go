package sizeof

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestSlice(t *testing.T) {
	assert.Equal(t, Slice[uint64](nil), uint64(Header))
	assert.Equal(t, Slice(make([]uint64, 2, 10)), uint64(Header+80))
	assert.Equal(t, Slice(make([]byte, 3)), uint64(Header+3))
	assert.Equal(t, Elem[[3]uint32](), uint64(12))
}
