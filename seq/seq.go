// Package seq provides eager and lazy functional helpers for Go slices.
//
// Eager helpers never write to their input and always return slices with a
// fresh backing array.
package seq

import "github.com/charmingruby/fpidioms/option"

// Map returns a new slice where out[i] == fn(in[i]). The element type may
// change, e.g. Map(nums, strconv.Itoa).
func Map[A any, B any](in []A, fn func(A) B) []B {
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps values satisfying predicate, in order.
func Filter[T any](in []T, predicate func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return out
}

// FoldLeft reduces the slice from left to right starting at init.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce folds the slice using its first element as the seed. It returns
// None for an empty slice.
func Reduce[T any](in []T, fn func(T, T) T) option.Option[T] {
	if len(in) == 0 {
		return option.None[T]()
	}
	return option.Some(FoldLeft(in[1:], in[0], fn))
}

// Find returns the first element satisfying predicate, or None.
func Find[T any](in []T, predicate func(T) bool) option.Option[T] {
	for _, v := range in {
		if predicate(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// Count reports how many elements satisfy predicate.
func Count[T any](in []T, predicate func(T) bool) int {
	n := 0
	for _, v := range in {
		if predicate(v) {
			n++
		}
	}
	return n
}

// Any reports whether any element satisfies predicate. False for an empty
// slice.
func Any[T any](in []T, predicate func(T) bool) bool {
	for _, v := range in {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies predicate. True for an empty
// slice.
func All[T any](in []T, predicate func(T) bool) bool {
	for _, v := range in {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// None reports whether no element satisfies predicate.
func None[T any](in []T, predicate func(T) bool) bool {
	return !Any(in, predicate)
}
