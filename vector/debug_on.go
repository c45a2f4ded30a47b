//go:build vectordebug

package vector

// debug enables bounds checks on Index and invariant checks after every
// mutation.
const debug = true
