// Package option implements a generic Option type used to report the absence
// of a result, such as a search with no match or a fold over an empty slice.
package option

import "fmt"

// Option holds either a value of type T or nothing. The zero value is None.
// Values are stored inline, so Some(nil) is a present value for nil-capable
// types; use IsSome to tell it apart from None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from Go's comma-ok convention.
//
// Example:
//
//	port := FromOk(os.LookupEnv("PORT"))
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsSome() bool { return o.ok }

func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it was present. When absent the value is
// the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOrElse returns the value, or fallback when the Option is None.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// MustGet returns the value and panics on None. Reserve it for call sites
// where presence was already established.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("option: MustGet on None")
	}
	return o.value
}

// Map applies fn to the value when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains o with another Option-producing function.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// String renders Some(v) or None. Meant for debugging and test failures.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
