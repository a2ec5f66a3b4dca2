// Package util holds small generic helpers shared across packages.
package util

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up a slice of numbers.
func Sum[N number](nums []N) N {
	var total N
	for _, v := range nums {
		total += v
	}
	return total
}

// Reversed returns a new slice with the elements in reverse order.
func Reversed[T any](s []T) []T {
	res := make([]T, len(s))
	for i, v := range s {
		res[len(s)-1-i] = v
	}
	return res
}

// Min returns the smaller of two ordered values.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
