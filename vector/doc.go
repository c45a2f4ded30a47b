// Package vector implements a contiguous growable sequence over a sole
// owner buffer.
//
// A T tracks a logical length separate from its allocated capacity. Every
// operation that needs more room builds a complete replacement buffer first
// and only then swaps it in, so a panic part way through (for instance while
// allocating) leaves the vector as it was.
//
// Growth doubles the capacity, with a floor of whatever the immediate
// request needs, so N appends copy O(N) elements in total.
//
// Slots past Len() stay allocated and keep whatever they held: Clear and
// PopBack only move the length. Positions returned by Begin, End, Insert and
// Erase, and the slice returned by View, are valid until the next operation
// that changes the capacity.
//
// A T is owned by one goroutine at a time and must not be copied by value;
// use Clone, Take, CopyFrom, MoveFrom and Swap instead.
package vector
