package explorer

import (
	"fmt"

	"github.com/san-kum/rhythmlab/internal/numtheory"
	"github.com/san-kum/rhythmlab/internal/pattern"
)

// estimateTotal is sum over k of C(n,k)*trials, capped at limit.
func estimateTotal(n, maxK, trials, limit int) int {
	total := 0
	for k := 2; k <= maxK; k++ {
		total += numtheory.Binomial(n, k) * trials
		if limit > 0 && total >= limit {
			return limit
		}
	}
	return total
}

// combinations walks every k-subset of items in lexicographic order and
// stops early when fn returns false. The slice passed to fn is reused.
func combinations(items []int, k int, fn func([]int) bool) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	subset := make([]int, k)
	for {
		for i, j := range idx {
			subset[i] = items[j]
		}
		if !fn(subset) {
			return
		}

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// gridPlan places every polygon of a subset on the subset's LCM grid where
// the generator bounds allow it, so rotations move vertices between grid
// points the other polygons can also reach.
type gridPlan struct {
	vertices   []int
	expansions []int
}

func planGrid(vertices []int) gridPlan {
	plan := gridPlan{
		vertices:   append([]int(nil), vertices...),
		expansions: make([]int, len(vertices)),
	}
	lcm, err := numtheory.LCMOfList(vertices)
	for i, v := range vertices {
		e := 1
		if err == nil {
			e = lcm / v
		}
		if e > pattern.MaxExpansion || v*e > pattern.MaxSteps {
			e = 1
		}
		plan.expansions[i] = e
	}
	return plan
}

// offsets returns the rotation of each polygon for a trial. Trial 0 is all
// zeros; later trials use (trial + polygonIndex) mod maxOffset, where
// maxOffset is the number of distinct rotations on the grid.
func (g gridPlan) offsets(trial int) []int {
	out := make([]int, len(g.vertices))
	if trial == 0 {
		return out
	}
	for i := range out {
		out[i] = (trial + i) % g.expansions[i]
	}
	return out
}

func (g gridPlan) polygons(offsets []int) ([]pattern.Pattern, error) {
	polys := make([]pattern.Pattern, len(g.vertices))
	for i, v := range g.vertices {
		p, err := pattern.Polygon(v, offsets[i], g.expansions[i])
		if err != nil {
			return nil, err
		}
		polys[i] = p
	}
	return polys, nil
}

func smallestIndex(vertices []int) int {
	best := 0
	for i, v := range vertices {
		if v < vertices[best] {
			best = i
		}
	}
	return best
}

// without returns s minus the element at i, as a new slice.
func without(s []int, i int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

func anyDivides(vertices []int) bool {
	for i, a := range vertices {
		for j, b := range vertices {
			if i != j && b%a == 0 {
				return true
			}
		}
	}
	return false
}

func offsetKey(offsets []int) string {
	return fmt.Sprint(offsets)
}
