package pattern

import (
	"fmt"
	"math"
)

var polygonNames = map[int]string{
	2:  "Digon",
	3:  "Triangle",
	4:  "Square",
	5:  "Pentagon",
	6:  "Hexagon",
	7:  "Heptagon",
	8:  "Octagon",
	9:  "Nonagon",
	10: "Decagon",
	11: "Hendecagon",
	12: "Dodecagon",
}

// PolygonName returns the conventional name for a polygon with v vertices.
func PolygonName(v int) string {
	if name, ok := polygonNames[v]; ok {
		return name
	}
	return fmt.Sprintf("%d-gon", v)
}

// Polygon places vertices evenly on a vertices*expansion step circle and
// rotates the result clockwise by offset steps.
func Polygon(vertices, offset, expansion int) (Pattern, error) {
	if vertices < MinVertices || vertices > MaxVertices {
		return Pattern{}, fmt.Errorf("%w: vertices %d not in [%d,%d]", ErrRange, vertices, MinVertices, MaxVertices)
	}
	if expansion < 1 || expansion > MaxExpansion {
		return Pattern{}, fmt.Errorf("%w: expansion %d not in [1,%d]", ErrRange, expansion, MaxExpansion)
	}
	total := vertices * expansion
	if total > MaxSteps {
		return Pattern{}, fmt.Errorf("%w: vertices*expansion %d exceeds %d", ErrRange, total, MaxSteps)
	}

	steps := rotate(placeVertices(vertices, total), offset)
	offset = mod(offset, total)

	formula := fmt.Sprintf("P(%d,%d)", vertices, offset)
	if expansion > 1 {
		formula = fmt.Sprintf("P(%d,%d,%d)", vertices, offset, expansion)
	}

	return Pattern{
		Steps:            steps,
		StepCount:        total,
		Formula:          formula,
		IsRegularPolygon: true,
		Polygon: &PolygonInfo{
			Vertices:  vertices,
			Offset:    offset,
			Expansion: expansion,
			Name:      PolygonName(vertices),
		},
	}, nil
}

func placeVertices(vertices, total int) []bool {
	steps := make([]bool, total)
	for v := 0; v < vertices; v++ {
		pos := int(math.Round(float64(v*total)/float64(vertices))) % total
		steps[pos] = true
	}
	return steps
}
