package sizeof

import "unsafe"

// Header is the size of a slice header.
const Header = 24

func Elem[T any]() uint64 { return uint64(unsafe.Sizeof(*new(T))) }

// Slice counts the header and every allocated element, live or not.
func Slice[T any](v []T) uint64 {
	return Header + Elem[T]()*uint64(cap(v))
}
