package viz

import (
	"math"

	"github.com/san-kum/rhythmlab/internal/analysis"
	"github.com/san-kum/rhythmlab/internal/pattern"
)

// Circle draws a pattern on a braille canvas: a ring of step ticks, the
// polygon joining consecutive onsets, and a disc at the onsets' center of
// gravity. Step 0 sits at twelve o'clock and steps advance clockwise.
func Circle(p pattern.Pattern, size int) *Canvas {
	size = max(size, 4)
	c := NewCanvas(size, size/2)

	// braille dots are close to square, so size x size/2 cells is square in dots
	w, h := size*2, (size/2)*4
	cx, cy := w/2, h/2
	radius := float64(min(cx, cy) - 2)

	point := func(step int, r float64) (int, int) {
		angle := 2*math.Pi*float64(step)/float64(p.StepCount) - math.Pi/2
		return cx + int(math.Round(r*math.Cos(angle))), cy + int(math.Round(r*math.Sin(angle)))
	}

	for i := 0; i < p.StepCount; i++ {
		x, y := point(i, radius)
		c.Set(x, y)
	}

	onsets := p.Onsets()
	for i, o := range onsets {
		x0, y0 := point(o, radius)
		x1, y1 := point(onsets[(i+1)%len(onsets)], radius)
		c.DrawLine(x0, y0, x1, y1)
		c.DrawDisc(x0, y0, 1)
	}

	b := analysis.BalanceOf(p)
	if b.OnsetCount > 0 {
		// balance coordinates use angle 2*pi*k/n from three o'clock
		gx := cx + int(math.Round(radius*b.Coordinates.Y))
		gy := cy - int(math.Round(radius*b.Coordinates.X))
		c.DrawDisc(gx, gy, 1)
	}
	return c
}
