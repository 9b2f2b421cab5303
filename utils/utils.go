// Package utils implements various helper functions and structures.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Max returns the maximum of two ordered values.
func Max[V constraints.Ordered](a, b V) V {
	if a >= b {
		return a
	}
	return b
}

// MaxSlice returns the maximum value of a non-empty slice.
func MaxSlice[V constraints.Ordered](slice []V) (max V) {
	max = slice[0]
	for _, v := range slice[1:] {
		max = Max(max, v)
	}
	return
}
