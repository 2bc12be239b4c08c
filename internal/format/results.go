package format

import (
	"fmt"

	"github.com/san-kum/rhythmlab/internal/analysis"
	"github.com/san-kum/rhythmlab/internal/explorer"
	"github.com/san-kum/rhythmlab/internal/pattern"
	"github.com/san-kum/rhythmlab/internal/storage"
)

const formulaWidth = 48

// ResultsTable lists up to limit results (all when limit <= 0) with a
// count footer.
func ResultsTable(results []explorer.Result, m Mode, limit int) string {
	tb := NewTable(m)
	tb.Header("#", "Polygons", "Offsets", "Subtract", "Formula", "Steps", "Onsets", "Magnitude", "Score", "Quality", "Interesting")
	tb.Columns(
		Column{Number: 1, Align: AlignRight},
		Column{Number: 5, MaxWidth: formulaWidth},
		Column{Number: 8, Align: AlignRight},
		Column{Number: 10, Align: AlignRight},
	)

	shown := results
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for i, r := range shown {
		formula, steps := "", 0
		if r.Pattern != nil {
			formula = Truncate(r.Pattern.Formula, formulaWidth)
			steps = r.Pattern.StepCount
		}
		tb.Row(i+1, Ints(r.Polygons), Ints(r.Offsets), Ints(r.SubtractVertices),
			formula, steps, r.Balance.OnsetCount,
			fmt.Sprintf("%.4f", r.Balance.Magnitude), r.Balance.Score,
			r.Quality, BoolMark(r.IsInteresting))
	}
	tb.Footer("", "", "", "", fmt.Sprintf("%d of %d shown", len(shown), len(results)))
	return tb.String()
}

// PatternTable summarizes one pattern and its balance.
func PatternTable(p pattern.Pattern, b analysis.Balance, m Mode) string {
	tb := NewTable(m)
	tb.Header("Field", "Value")
	tb.Row("Formula", p.Formula)
	tb.Row("Steps", p.StepCount)
	tb.Row("Binary", p.Binary())
	tb.Row("Hex", p.Hex())
	tb.Row("Onsets", Ints(p.Onsets()))
	tb.Row("Density", fmt.Sprintf("%.3f", p.Density()))
	tb.Row("Magnitude", fmt.Sprintf("%.6f", b.Magnitude))
	tb.Row("Score", b.Score)
	tb.Row("Center", fmt.Sprintf("(%.4f, %.4f)", b.Coordinates.X, b.Coordinates.Y))
	tb.Row("Perfect", BoolMark(b.IsPerfectlyBalanced))
	return tb.String()
}

func RunsTable(runs []storage.RunMetadata, m Mode) string {
	tb := NewTable(m)
	tb.Header("ID", "Name", "Started", "Sides", "Size", "Target", "Status", "Tested", "Found", "Perfect", "Elapsed")
	for _, r := range runs {
		tb.Row(r.ID, r.Name, r.Timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d-%d", r.Params.MinSides, r.Params.MaxSides),
			r.Params.MaxCombinationSize, r.Params.Target, r.Status,
			fmt.Sprintf("%d/%d", r.Tested, r.Total), r.Found, r.Perfect,
			FmtDuration(r.Elapsed))
	}
	return tb.String()
}
