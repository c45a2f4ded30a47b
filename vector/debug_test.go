//go:build vectordebug

package vector

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestDebugIndex(t *testing.T) {
	v := WithCapacity[int](Reserve(4))
	v.PushBack(1)

	defer func() { assert.That(t, recover() != nil) }()
	v.Index(1)
}

func TestDebugInvariants(t *testing.T) {
	v := Of(1, 2, 3)
	v.cap = 10

	defer func() { assert.That(t, recover() != nil) }()
	v.Resize(1)
}
