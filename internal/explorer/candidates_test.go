package explorer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCombinations(t *testing.T) {
	var got [][]int
	combinations([]int{3, 4, 5, 6}, 2, func(s []int) bool {
		got = append(got, append([]int(nil), s...))
		return true
	})
	want := [][]int{{3, 4}, {3, 5}, {3, 6}, {4, 5}, {4, 6}, {5, 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("combinations mismatch (-want +got):\n%s", diff)
	}
}

func TestCombinations_EarlyStop(t *testing.T) {
	calls := 0
	combinations([]int{1, 2, 3, 4, 5}, 3, func([]int) bool {
		calls++
		return calls < 4
	})
	if calls != 4 {
		t.Errorf("expected 4 calls, got %d", calls)
	}
}

func TestCombinations_OutOfRange(t *testing.T) {
	combinations([]int{1, 2}, 3, func([]int) bool {
		t.Error("expected no subsets")
		return true
	})
}

func TestEstimateTotal(t *testing.T) {
	tests := []struct {
		n, maxK, trials, limit int
		want                   int
	}{
		{2, 2, 5, 0, 5},
		{4, 3, 5, 0, (6 + 4) * 5},
		{10, 3, 5, 100, 100},
		{1, 2, 5, 0, 0},
	}
	for _, tt := range tests {
		if got := estimateTotal(tt.n, tt.maxK, tt.trials, tt.limit); got != tt.want {
			t.Errorf("estimateTotal(%d,%d,%d,%d): expected %d, got %d", tt.n, tt.maxK, tt.trials, tt.limit, tt.want, got)
		}
	}
}

func TestPlanGrid(t *testing.T) {
	tests := []struct {
		vertices []int
		want     []int
	}{
		{[]int{4, 6}, []int{3, 2}},
		{[]int{3, 4, 5}, []int{20, 15, 12}},
		{[]int{7, 11}, []int{1, 1}},
		{[]int{2, 32}, []int{16, 1}},
	}
	for _, tt := range tests {
		plan := planGrid(tt.vertices)
		if diff := cmp.Diff(tt.want, plan.expansions); diff != "" {
			t.Errorf("planGrid(%v) mismatch (-want +got):\n%s", tt.vertices, diff)
		}
	}
}

func TestGridOffsets(t *testing.T) {
	plan := planGrid([]int{4, 6})
	tests := []struct {
		trial int
		want  []int
	}{
		{0, []int{0, 0}},
		{1, []int{1, 0}},
		{2, []int{2, 1}},
		{3, []int{0, 0}},
		{4, []int{1, 1}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, plan.offsets(tt.trial)); diff != "" {
			t.Errorf("trial %d mismatch (-want +got):\n%s", tt.trial, diff)
		}
	}
}

func TestGridPolygons(t *testing.T) {
	plan := planGrid([]int{4, 6})
	polys, err := plan.polygons([]int{1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range polys {
		if p.StepCount != 12 {
			t.Errorf("polygon %d: expected 12 steps, got %d", i, p.StepCount)
		}
	}
	if diff := cmp.Diff([]int{1, 4, 7, 10}, polys[0].Onsets()); diff != "" {
		t.Errorf("square onsets mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpers(t *testing.T) {
	if got := smallestIndex([]int{5, 3, 4}); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if diff := cmp.Diff([]int{5, 4}, without([]int{5, 3, 4}, 1)); diff != "" {
		t.Errorf("without mismatch (-want +got):\n%s", diff)
	}
	if !anyDivides([]int{3, 6}) {
		t.Error("expected 3 to divide 6")
	}
	if anyDivides([]int{4, 6}) {
		t.Error("expected no divisor pair in 4,6")
	}
	if offsetKey([]int{1, 2}) == offsetKey([]int{12}) {
		t.Error("expected distinct keys")
	}
}
