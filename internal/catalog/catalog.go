// Package catalog registers every idiom as a named, self-checking
// demonstration.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/google/go-cmp/cmp"

	"github.com/charmingruby/fpidioms/idioms"
	"github.com/charmingruby/fpidioms/list"
	"github.com/charmingruby/fpidioms/option"
	"github.com/charmingruby/fpidioms/seq"
)

var (
	// ErrMismatch reports a demonstration whose result differs from the
	// expected value.
	ErrMismatch = errors.New("catalog: result mismatch")
	// ErrUnknownDemo reports a name that is not registered.
	ErrUnknownDemo = errors.New("catalog: unknown demo")
)

// Demo is a named demonstration. Run returns nil when every check passes.
type Demo struct {
	Name        string
	Description string
	Run         func() error
}

// All returns every demonstration in a stable order. The returned slice is a
// fresh copy.
func All() []Demo {
	return []Demo{
		{"transform", "increment all elements with seq.Map", runTransform},
		{"transform-to-string", "map ints to their decimal text", runTransformToString},
		{"increment", "generic increment function value", runIncrement},
		{"capture", "closure capturing a value from its scope", runCapture},
		{"append-chain", "build a list by chaining pure appends", runAppendChain},
		{"append-curry", "append partially applied to the empty list", runAppendCurry},
		{"compose", "three-element list from composed appends", runCompose},
		{"compose-curry", "composition with every argument bound", runComposeCurry},
		{"function-parameter", "call a function value and increment its result", runFunctionParameter},
		{"find-first", "first odd element", runFindFirst},
		{"reduce", "fold decimal text into one string", runReduce},
		{"count", "count odd elements", runCount},
		{"all", "every element satisfies a predicate", runAll},
		{"any", "some element satisfies a predicate", runAny},
		{"none", "no element satisfies a predicate", runNone},
	}
}

// Lookup finds a demonstration by name.
func Lookup(name string) option.Option[Demo] {
	return seq.Find(All(), func(d Demo) bool { return d.Name == name })
}

// Select returns the named demonstrations in catalog order. An empty names
// slice selects everything. Duplicate names are reported once.
func Select(names []string) ([]Demo, error) {
	if len(names) == 0 {
		return All(), nil
	}
	var unknown []error
	for i, name := range names {
		if slices.Contains(names[:i], name) {
			continue
		}
		if Lookup(name).IsNone() {
			unknown = append(unknown, fmt.Errorf("%w: %q", ErrUnknownDemo, name))
		}
	}
	if len(unknown) > 0 {
		return nil, errors.Join(unknown...)
	}
	wanted := func(d Demo) bool {
		return seq.Any(names, func(n string) bool { return n == d.Name })
	}
	return seq.Filter(All(), wanted), nil
}

func expect[T any](what string, got, want T) error {
	if cmp.Equal(got, want) {
		return nil
	}
	return fmt.Errorf("%w: %s (-want +got):\n%s", ErrMismatch, what, cmp.Diff(want, got))
}

func check(what string, got bool) error {
	return expect(what, got, true)
}

func threeElements() []int {
	return list.BuildThree(0, 1, 2)
}

func isOdd(v int) bool { return v%2 != 0 }

func runTransform() error {
	return expect("IncrementAll([0 1 2])", idioms.IncrementAll(threeElements()), []int{1, 2, 3})
}

func runTransformToString() error {
	return expect("Map([0 1 2], Itoa)", seq.Map(threeElements(), strconv.Itoa), []string{"0", "1", "2"})
}

func runIncrement() error {
	return expect("Increment(2)", idioms.Increment(2), 3)
}

func runCapture() error {
	return expect("AddFromContext(10)", idioms.AddFromContext(10), 20)
}

func runAppendChain() error {
	got := list.Append(list.Append(list.Append(list.Empty[int](), 1), 2), 3)
	return expect("chained Append", got, []int{1, 2, 3})
}

func runAppendCurry() error {
	return errors.Join(
		expect("AppendToEmpty(1)", list.AppendToEmpty(1), []int{1}),
		expect("AppendToEmpty(2)", list.AppendToEmpty(2), []int{2}),
		expect("Append(AppendToEmpty(1), 2)", list.Append(list.AppendToEmpty(1), 2), []int{1, 2}),
	)
}

func runCompose() error {
	return expect("BuildThree(0, 1, 2)", threeElements(), []int{0, 1, 2})
}

func runComposeCurry() error {
	return expect("ListWith0And1()", list.ListWith0And1(), []int{0, 1})
}

func runFunctionParameter() error {
	return expect("CallAndIncrement(one)", idioms.CallAndIncrement(func() int { return 1 }), 2)
}

func runFindFirst() error {
	found, ok := seq.Find(threeElements(), isOdd).Get()
	if !ok {
		return fmt.Errorf("%w: no odd element found", ErrMismatch)
	}
	return expect("first odd", found, 1)
}

func runReduce() error {
	return expect("JoinDigits([0 1 2])", idioms.JoinDigits(threeElements()), "012")
}

func runCount() error {
	return expect("odd count", seq.Count(threeElements(), isOdd), 1)
}

func runAll() error {
	s := threeElements()
	return errors.Join(
		check("all < 3", seq.All(s, func(v int) bool { return v < 3 })),
		check("not all <= 1", !seq.All(s, func(v int) bool { return v <= 1 })),
	)
}

func runAny() error {
	s := threeElements()
	return errors.Join(
		check("any == 0", seq.Any(s, func(v int) bool { return v == 0 })),
		check("not any > 2", !seq.Any(s, func(v int) bool { return v > 2 })),
	)
}

func runNone() error {
	s := threeElements()
	return errors.Join(
		check("none == 5", seq.None(s, func(v int) bool { return v == 5 })),
		check("not none == 2", !seq.None(s, func(v int) bool { return v == 2 })),
	)
}
