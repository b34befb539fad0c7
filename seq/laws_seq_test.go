package seq_test

import (
	"slices"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/samber/lo"

	"github.com/charmingruby/fpidioms/seq"
)

func TestMapPreservesLengthAndOrder(t *testing.T) {
	check := func(in []int) bool {
		out := seq.Map(in, strconv.Itoa)
		if len(out) != len(in) {
			return false
		}
		for i := range in {
			if out[i] != strconv.Itoa(in[i]) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("map law failed: %v", err)
	}
}

func TestMapFunctorLaws(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }
	check := func(in []int) bool {
		identity := slices.Equal(seq.Map(in, func(x int) int { return x }), in)
		composed := slices.Equal(
			seq.Map(seq.Map(in, inc), double),
			seq.Map(in, func(x int) int { return double(inc(x)) }),
		)
		return identity && composed
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor law failed: %v", err)
	}
}

// The predicate helpers must agree with samber/lo on arbitrary input.
func TestPredicatesAgreeWithLo(t *testing.T) {
	odd := func(v int) bool { return v%2 != 0 }
	check := func(in []int) bool {
		found, ok := lo.Find(in, odd)
		got, gotOK := seq.Find(in, odd).Get()
		return ok == gotOK && found == got &&
			seq.Count(in, odd) == lo.CountBy(in, odd) &&
			seq.All(in, odd) == lo.EveryBy(in, odd) &&
			seq.Any(in, odd) == lo.SomeBy(in, odd) &&
			seq.None(in, odd) == lo.NoneBy(in, odd)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("predicate mismatch: %v", err)
	}
}

func TestFoldLeftAgreesWithLoReduce(t *testing.T) {
	check := func(in []int) bool {
		join := func(acc string, v int) string { return acc + strconv.Itoa(v) + "," }
		want := lo.Reduce(in, func(acc string, v int, _ int) string { return join(acc, v) }, "")
		return seq.FoldLeft(in, "", join) == want
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("fold mismatch: %v", err)
	}
}
