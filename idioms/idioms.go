// Package idioms collects small closure and function-value idioms built on
// top of seq and list.
package idioms

import (
	"strconv"

	"github.com/charmingruby/fpidioms/seq"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Increment returns v + 1.
func Increment[T Number](v T) T {
	return v + 1
}

// IncrementAll returns a copy of s with every element incremented.
func IncrementAll(s []int) []int {
	return seq.Map(s, Increment[int])
}

// AddFromContext builds a closure over v and applies it to 10.
func AddFromContext(v int) int {
	addCaptured := func(x int) int {
		return x + v
	}
	return addCaptured(10)
}

// CallAndIncrement invokes fn and returns its result plus one.
func CallAndIncrement(fn func() int) int {
	return fn() + 1
}

// Concat joins two strings; it is the combining step of JoinDigits.
func Concat(a, b string) string {
	return a + b
}

// JoinDigits renders each element in base 10 and concatenates them in order,
// e.g. [0 1 2] becomes "012".
func JoinDigits(s []int) string {
	return seq.FoldLeft(seq.Map(s, strconv.Itoa), "", Concat)
}
