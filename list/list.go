// Package list builds slices one element at a time without mutating them.
//
// Every function returns a slice with its own backing array, so results can
// be modified freely without affecting the inputs or earlier results.
package list

import "github.com/charmingruby/fpidioms/fp"

// Empty returns an empty, non-nil slice.
func Empty[T any]() []T {
	return []T{}
}

// Append returns s followed by v. Neither s nor its spare capacity is
// written.
func Append[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

// AppendToEmpty is Append with the initial slice fixed to Empty.
func AppendToEmpty[T any](v T) []T {
	return fp.Partial(Append[T], Empty[T]())(v)
}

// AppendTwoToEmpty returns [a b].
func AppendTwoToEmpty[T any](a, b T) []T {
	return Append(AppendToEmpty(a), b)
}

// BuildThree returns [a b c] by chaining appends.
func BuildThree[T any](a, b, c T) []T {
	return Append(Append(AppendToEmpty(a), b), c)
}

// ListWith0And1 is AppendTwoToEmpty with both arguments bound.
var ListWith0And1 = fp.Bind2(AppendTwoToEmpty[int], 0, 1)
