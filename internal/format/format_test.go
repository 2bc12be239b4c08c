package format_test

import (
	"strings"
	"testing"
	"time"

	"github.com/san-kum/rhythmlab/internal/analysis"
	"github.com/san-kum/rhythmlab/internal/combine"
	"github.com/san-kum/rhythmlab/internal/explorer"
	"github.com/san-kum/rhythmlab/internal/format"
	"github.com/san-kum/rhythmlab/internal/pattern"
	"github.com/san-kum/rhythmlab/internal/storage"
)

func TestASCII_Table(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Polygon", "Steps")
	tb.Row("Triangle", 3)
	out := tb.String()

	if !strings.Contains(out, "Triangle") {
		t.Errorf("expected 'Triangle' in output:\n%s", out)
	}
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_Table(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Polygon", "Steps")
	tb.Row("Square", 4)
	tb.Footer("TOTAL", 4)
	out := tb.String()

	if !strings.Contains(out, "| Polygon") {
		t.Errorf("expected markdown header with '| Polygon':\n%s", out)
	}
	if !strings.Contains(out, "TOTAL") {
		t.Errorf("expected footer in output:\n%s", out)
	}
}

func TestParseMode(t *testing.T) {
	if format.ParseMode("md") != format.Markdown || format.ParseMode("markdown") != format.Markdown {
		t.Error("expected markdown mode")
	}
	if format.ParseMode("") != format.ASCII {
		t.Error("expected ascii by default")
	}
}

func squareHexagon(t *testing.T) explorer.Result {
	t.Helper()
	square, _ := pattern.Polygon(4, 0, 3)
	hexagon, _ := pattern.Polygon(6, 0, 2)
	c, err := combine.Multiple([]pattern.Pattern{square, hexagon})
	if err != nil {
		t.Fatal(err)
	}
	return explorer.Result{
		Polygons: []int{4, 6}, Offsets: []int{0, 0},
		Pattern: c, Balance: analysis.BalanceOf(c.Pattern),
		IsInteresting: true, Quality: 71,
	}
}

func TestResultsTable(t *testing.T) {
	r := squareHexagon(t)
	out := format.ResultsTable([]explorer.Result{r, r, r}, format.ASCII, 2)

	for _, want := range []string{"P(4,0,3)+P(6,0,2)", "perfect", "4,6"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	// ASCII footers render upper-cased
	if !strings.Contains(strings.ToUpper(out), "2 OF 3 SHOWN") {
		t.Errorf("expected shown count in footer:\n%s", out)
	}
}

func TestPatternTable(t *testing.T) {
	p, _ := pattern.Euclidean(3, 8, 0)
	out := format.PatternTable(p, analysis.BalanceOf(p), format.Markdown)

	for _, want := range []string{"E(3,8)", "10010010", "0x92"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunsTable(t *testing.T) {
	runs := []storage.RunMetadata{{
		ID:     "explore_1",
		Params: explorer.Params{MinSides: 3, MaxSides: 8, MaxCombinationSize: 2, Target: explorer.TargetPerfect},
		Status: explorer.StatusCompleted, Total: 10, Tested: 10, Found: 2,
		Elapsed: 1500 * time.Millisecond,
	}}
	out := format.RunsTable(runs, format.ASCII)
	for _, want := range []string{"explore_1", "3-8", "10/10", "1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFmtDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{2500 * time.Millisecond, "2.5s"},
		{125 * time.Second, "2m 5s"},
	}
	for _, tt := range tests {
		if got := format.FmtDuration(tt.d); got != tt.want {
			t.Errorf("FmtDuration(%s): expected %q, got %q", tt.d, tt.want, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"P(3,0)", 10, "P(3,0)"},
		{"P(3,0)+P(4,0)", 8, "P(3,0..."},
		{"P(3,0)", 2, "P("},
	}
	for _, tt := range tests {
		if got := format.Truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.in, tt.maxLen, tt.want, got)
		}
	}
}

func TestIntsAndBoolMark(t *testing.T) {
	if got := format.Ints(nil); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
	if got := format.Ints([]int{3, 4}); got != "3,4" {
		t.Errorf("expected '3,4', got %q", got)
	}
	if format.BoolMark(true) != "✓" || format.BoolMark(false) != "✗" {
		t.Error("unexpected bool marks")
	}
}
