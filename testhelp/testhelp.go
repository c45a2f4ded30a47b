package testhelp

import (
	"github.com/zeebo/mwc"
)

var (
	valRng = mwc.Rand()
	opRng  = mwc.Rand()
)

// Uint64s returns n random values.
func Uint64s(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = valRng.Uint64()
	}
	return out
}

// Value returns a random value below 1<<bits.
func Value(bits uint64) uint64 {
	return valRng.Uint64n(1 << (bits % 64))
}

// Intn returns a random int in [0, n). n must be positive.
func Intn(n int) int {
	return int(opRng.Uint64n(uint64(n)))
}
