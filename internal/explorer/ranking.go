package explorer

import (
	"math"
	"sort"

	"github.com/san-kum/rhythmlab/internal/analysis"
	"github.com/san-kum/rhythmlab/internal/numtheory"
)

// SortByBalance returns a copy of results ordered by score rank, then by
// ascending magnitude. Equal results keep their discovery order.
func SortByBalance(results []Result) []Result {
	sorted := append([]Result{}, results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Balance.Score.Rank(), sorted[j].Balance.Score.Rank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].Balance.Magnitude < sorted[j].Balance.Magnitude
	})
	return sorted
}

var scorePoints = map[analysis.Score]int{
	analysis.Perfect:   50,
	analysis.Excellent: 40,
	analysis.Good:      30,
	analysis.Fair:      15,
	analysis.Poor:      5,
}

const (
	densityLow     = 0.2
	densityHigh    = 0.5
	densityFalloff = 0.3
	densityPoints  = 25
)

// QualityScore rates a result in [0,100] from its balance bucket, onset
// density, polygon count and, for exactly two polygons, whether their vertex
// counts are coprime.
func QualityScore(r Result) int {
	score := float64(scorePoints[r.Balance.Score])

	if r.Pattern != nil {
		d := r.Pattern.Density()
		var dist float64
		switch {
		case d < densityLow:
			dist = densityLow - d
		case d > densityHigh:
			dist = d - densityHigh
		}
		score += densityPoints * math.Max(0, 1-dist/densityFalloff)
	}

	n := len(r.Polygons) + len(r.SubtractVertices)
	score += float64(min(15, 5*n))

	if isCoprimePair(r.Polygons, r.SubtractVertices) {
		score += 10
	}

	return int(math.Round(math.Min(100, score)))
}

// isCoprimePair reports whether the groups hold exactly two vertex counts
// and those are coprime.
func isCoprimePair(groups ...[]int) bool {
	var all []int
	for _, g := range groups {
		all = append(all, g...)
	}
	if len(all) != 2 {
		return false
	}
	ok, err := numtheory.Coprime(all[0], all[1])
	return err == nil && ok
}

func filter(results []Result, keep func(Result) bool) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
