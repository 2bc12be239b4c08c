package export

import (
	"strings"
	"testing"

	"github.com/san-kum/rhythmlab/internal/pattern"
	"github.com/san-kum/rhythmlab/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	svg := CanvasToSVG(c, 10)
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Errorf("expected 40x40 image:\n%s", svg)
	}
	if CanvasToSVG(nil, 10) != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestPatternSVG(t *testing.T) {
	p, err := pattern.Euclidean(3, 8, 0)
	if err != nil {
		t.Fatal(err)
	}
	svg := PatternSVG(p, 200)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Errorf("expected complete SVG document:\n%s", svg)
	}
	if got := strings.Count(svg, `r="5"`); got != 3 {
		t.Errorf("expected 3 onset markers, got %d", got)
	}
	if got := strings.Count(svg, `r="2"`); got != 8 {
		t.Errorf("expected 8 step ticks, got %d", got)
	}
	if !strings.Contains(svg, "<polygon") || !strings.Contains(svg, "E(3,8)") {
		t.Errorf("expected polygon and caption:\n%s", svg)
	}
}

func TestPatternSVG_EscapesFormula(t *testing.T) {
	p, _ := pattern.ParseBinary("1010")
	p.Formula = "a<b&c"
	if svg := PatternSVG(p, 100); !strings.Contains(svg, "a&lt;b&amp;c") {
		t.Errorf("expected escaped formula:\n%s", svg)
	}
}
