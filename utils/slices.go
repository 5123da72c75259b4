// Package utils implements various helper functions.
package utils

import (
	"fmt"
	"slices"
)

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// RotateSlice returns a new slice corresponding to s rotated by k positions to the left.
func RotateSlice[V any](s []V, k int) []V {
	ret := make([]V, len(s))
	RotateSliceAllocFree(s, k, ret)
	return ret
}

// RotateSliceAllocFree rotates s by k positions to the left and writes the result on sout.
// If s and sout share the same backing array, the rotation is done in place.
// The method will panic if s and sout do not have the same length.
func RotateSliceAllocFree[V any](s []V, k int, sout []V) {

	if len(s) != len(sout) {
		panic(fmt.Errorf("cannot RotateSliceAllocFree: len(s)=%d != len(sout)=%d", len(s), len(sout)))
	}

	if len(s) == 0 {
		return
	}

	if Alias1D(s, sout) {
		RotateSliceInPlace(s, k)
		copy(sout, s)
		return
	}

	k = rotation(k, len(s))

	copy(sout[:len(s)-k], s[k:])
	copy(sout[len(s)-k:], s[:k])
}

// RotateSliceInPlace rotates s in place by k positions to the left.
func RotateSliceInPlace[V any](s []V, k int) {

	if len(s) == 0 {
		return
	}

	if k = rotation(k, len(s)); k == 0 {
		return
	}

	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

// rotation returns k mod n in [0, n).
func rotation(k, n int) int {
	if k %= n; k < 0 {
		k += n
	}
	return k
}
