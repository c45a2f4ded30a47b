//go:build !vectordebug

package vector

const debug = false
