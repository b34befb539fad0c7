// Package fp provides lightweight helpers for composing and partially
// applying Go functions.
//
// Example:
//
//	inc := fp.Partial(func(a, b int) int { return a + b }, 1)
//	value := fp.Pipe(2, inc, inc)
package fp

import "github.com/samber/lo"

// Identity returns the supplied value unchanged.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Constant returns a thunk that always returns v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe threads value through fns from left to right.
func Pipe[T any](value T, fns ...func(T) T) T {
	for _, fn := range fns {
		value = fn(value)
	}
	return value
}

// Compose returns the right-to-left composition of fns, so
// Compose(f, g)(x) == f(g(x)). With no functions it behaves like Identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			value = fns[i](value)
		}
		return value
	}
}

// Curry turns a binary function into a chain of unary ones.
//
// Example:
//
//	add := Curry(func(a, b int) int { return a + b })
//	addFive := add(5)
//	result := addFive(3)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return Partial(fn, a)
	}
}

// Partial fixes the first argument of a binary function.
//
// Example:
//
//	greet := func(greeting, name string) string { return greeting + ", " + name }
//	hello := Partial(greet, "hello")
//	msg := hello("gopher")
func Partial[A any, B any, C any](fn func(A, B) C, a A) func(B) C {
	return lo.Partial(fn, a)
}

// Bind2 fixes both arguments of a binary function, leaving a thunk that
// calls fn(a, b) each time it is invoked.
func Bind2[A any, B any, C any](fn func(A, B) C, a A, b B) func() C {
	return func() C {
		return fn(a, b)
	}
}
