package testhelp

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestGenerators(t *testing.T) {
	assert.Equal(t, len(Uint64s(10)), 10)
	assert.Equal(t, len(Uint64s(0)), 0)

	for i := 0; i < 1000; i++ {
		assert.That(t, Intn(5) < 5)
		assert.That(t, Value(4) < 16)
	}
}
