package list_test

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/charmingruby/fpidioms/list"
)

func TestAppendChaining(t *testing.T) {
	got := list.Append(list.Append(list.Append(list.Empty[int](), 1), 2), 3)
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Fatalf("chained append mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendDoesNotTouchSpareCapacity(t *testing.T) {
	backing := make([]int, 2, 8)
	backing[0], backing[1] = 7, 8
	first := list.Append(backing, 1)
	second := list.Append(backing, 2)
	if diff := cmp.Diff([]int{7, 8, 1}, first); diff != "" {
		t.Fatalf("first append mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{7, 8, 2}, second); diff != "" {
		t.Fatalf("second append clobbered by sibling (-want +got):\n%s", diff)
	}
	if extended := backing[:3]; extended[2] != 0 {
		t.Fatalf("append wrote into input capacity: %v", extended)
	}
}

func TestAppendLeavesInputUnchanged(t *testing.T) {
	check := func(s []int, v int) bool {
		before := slices.Clone(s)
		out := list.Append(s, v)
		if len(out) > 0 {
			out[0]++
		}
		return slices.Equal(before, s) &&
			len(out) == len(s)+1 &&
			out[len(out)-1] == v
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("append law failed: %v", err)
	}
}

func TestAppendToEmpty(t *testing.T) {
	if diff := cmp.Diff([]int{1}, list.AppendToEmpty(1)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, list.AppendToEmpty(2)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2}, list.Append(list.AppendToEmpty(1), 2)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"go"}, list.AppendToEmpty("go")); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestBuildThree(t *testing.T) {
	if diff := cmp.Diff([]int{0, 1, 2}, list.BuildThree(0, 1, 2)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestListWith0And1(t *testing.T) {
	first := list.ListWith0And1()
	if diff := cmp.Diff([]int{0, 1}, first); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	first[0] = 99
	if diff := cmp.Diff([]int{0, 1}, list.ListWith0And1()); diff != "" {
		t.Fatalf("calls must not share state (-want +got):\n%s", diff)
	}
}
