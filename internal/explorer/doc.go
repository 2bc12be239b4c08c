// Package explorer searches combinations of regular polygons for rhythms
// whose onsets balance around the circle.
//
// An [Explorer] walks every k-subset of a vertex-count range, rotates each
// polygon on the subset's LCM grid for a few deterministic offset trials, and
// scores the union (and, for three or more polygons, a subtractive variant)
// with [analysis.CalculateBalance]. Accepted candidates become [Result]
// values ranked by [SortByBalance] and [QualityScore].
//
// The run is cooperative: it yields every few candidates so callers can poll
// [Explorer.Progress] or call [Explorer.Stop] from another goroutine.
//
//	ex := explorer.New()
//	results, err := ex.ExploreAllCombinations(ctx, explorer.Params{
//		MinSides: 3, MaxSides: 8, MaxCombinationSize: 3,
//		Target: explorer.TargetPerfect,
//	})
//
// [Ensemble] runs several independent explorations in parallel.
package explorer
