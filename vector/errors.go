package vector

import (
	"fmt"

	"github.com/zeebo/errs/v2"
)

// RangeError is returned by At when the index is not a live element.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Len)
}

// violation builds the panic value for a broken caller precondition.
func violation(format string, args ...any) error {
	return errs.Errorf("vector: "+format, args...)
}

func (v *T[V]) checkInvariants() {
	if !debug {
		return
	}
	switch {
	case v.size < 0 || v.size > v.cap:
		panic(violation("length %d outside capacity %d", v.size, v.cap))
	case v.cap != v.items.Len():
		panic(violation("capacity %d but buffer holds %d", v.cap, v.items.Len()))
	}
}
