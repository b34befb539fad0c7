package seq

import (
	"iter"
	"slices"
)

// Values yields the elements of in without copying them.
func Values[T any](in []T) iter.Seq[T] {
	return slices.Values(in)
}

// MapSeq lazily transforms values. fn runs only for values the consumer pulls.
func MapSeq[A any, B any](it iter.Seq[A], fn func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range it {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// FilterSeq lazily keeps values satisfying predicate.
func FilterSeq[T any](it iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range it {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// Take yields at most n values.
func Take[T any](it iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range it {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Collect exhausts it into a slice. The result is never nil.
func Collect[T any](it iter.Seq[T]) []T {
	out := slices.Collect(it)
	if out == nil {
		return []T{}
	}
	return out
}
