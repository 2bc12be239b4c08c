// Package export writes patterns as standalone SVG images.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/rhythmlab/internal/analysis"
	"github.com/san-kum/rhythmlab/internal/pattern"
	"github.com/san-kum/rhythmlab/internal/viz"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`

// CanvasToSVG draws every set braille dot as a circle, scale pixels apart.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	w := int(float64(canvas.Width) * scale * 2)
	h := int(float64(canvas.Height) * scale * 4)

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, w, h, w, h)
	sb.WriteString("<g fill=\"#00ff88\">\n")

	r := scale * 0.4
	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if canvas.IsSet(x, y) {
				fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
					float64(x)*scale+scale/2, float64(y)*scale+scale/2, r)
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// PatternSVG draws the pattern as a vector circle: step ticks, onset
// markers, the polygon through the onsets and the center of gravity.
// Step 0 is at twelve o'clock.
func PatternSVG(p pattern.Pattern, size int) string {
	size = max(size, 64)
	c := float64(size) / 2
	radius := c * 0.8

	point := func(step int) (float64, float64) {
		a := 2 * math.Pi * float64(step) / float64(p.StepCount)
		return c + radius*math.Sin(a), c - radius*math.Cos(a)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, size, size, size, size)
	fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"none\" stroke=\"#444466\"/>\n", c, c, radius)

	for i := 0; i < p.StepCount; i++ {
		x, y := point(i)
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"2\" fill=\"#666688\"/>\n", x, y)
	}

	onsets := p.Onsets()
	if len(onsets) > 1 {
		pts := make([]string, len(onsets))
		for i, o := range onsets {
			x, y := point(o)
			pts[i] = fmt.Sprintf("%.1f,%.1f", x, y)
		}
		fmt.Fprintf(&sb, "<polygon points=\"%s\" fill=\"none\" stroke=\"#00ffff\" stroke-width=\"1.5\"/>\n", strings.Join(pts, " "))
	}
	for _, o := range onsets {
		x, y := point(o)
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"5\" fill=\"#ffffff\"/>\n", x, y)
	}

	if b := analysis.BalanceOf(p); b.OnsetCount > 0 {
		gx := c + radius*b.Coordinates.Y
		gy := c - radius*b.Coordinates.X
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"#ff00ff\"/>\n", gx, gy)
	}

	fmt.Fprintf(&sb, "<text x=\"8\" y=\"%d\" fill=\"#888899\" font-family=\"monospace\" font-size=\"12\">%s</text>\n",
		size-8, escape(p.Formula))
	sb.WriteString("</svg>\n")
	return sb.String()
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
