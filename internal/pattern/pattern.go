package pattern

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// MaxSteps is the largest step count a generated pattern may have.
	MaxSteps = 64

	MinVertices  = 2
	MaxVertices  = 32
	MaxExpansion = 21
)

// ErrRange indicates a generator or transform parameter outside its bounds.
var ErrRange = errors.New("pattern: parameter out of range")

// PolygonInfo records how a polygon pattern was generated.
type PolygonInfo struct {
	Vertices  int    `json:"vertices"`
	Offset    int    `json:"offset"`
	Expansion int    `json:"expansion"`
	Name      string `json:"polygonName"`
}

// EuclideanInfo records how a Euclidean pattern was generated.
type EuclideanInfo struct {
	Beats  int `json:"beats"`
	Offset int `json:"offset"`
}

// Pattern is an immutable cyclic step sequence. Methods never modify the
// receiver; anything that changes steps returns a new Pattern.
type Pattern struct {
	Steps            []bool         `json:"steps"`
	StepCount        int            `json:"stepCount"`
	Formula          string         `json:"formula"`
	IsRegularPolygon bool           `json:"isRegularPolygon,omitempty"`
	Polygon          *PolygonInfo   `json:"polygon,omitempty"`
	Euclidean        *EuclideanInfo `json:"euclidean,omitempty"`
}

// FromSteps builds a pattern from a copy of steps.
func FromSteps(steps []bool, formula string) (Pattern, error) {
	if err := checkStepCount("steps", len(steps)); err != nil {
		return Pattern{}, err
	}
	return Pattern{
		Steps:     cloneSteps(steps),
		StepCount: len(steps),
		Formula:   formula,
	}, nil
}

// ParseBinary builds a pattern from a string of '1' and '0' characters.
func ParseBinary(s string) (Pattern, error) {
	steps := make([]bool, 0, len(s))
	for i, c := range s {
		switch c {
		case '1':
			steps = append(steps, true)
		case '0':
			steps = append(steps, false)
		default:
			return Pattern{}, fmt.Errorf("%w: invalid binary digit %q at %d", ErrRange, c, i)
		}
	}
	return FromSteps(steps, "b"+s)
}

func checkStepCount(name string, n int) error {
	if n < 1 || n > MaxSteps {
		return fmt.Errorf("%w: %s %d not in [1,%d]", ErrRange, name, n, MaxSteps)
	}
	return nil
}

func cloneSteps(s []bool) []bool {
	c := make([]bool, len(s))
	copy(c, s)
	return c
}

// Clone returns a deep copy.
func (p Pattern) Clone() Pattern {
	c := p
	c.Steps = cloneSteps(p.Steps)
	if p.Polygon != nil {
		info := *p.Polygon
		c.Polygon = &info
	}
	if p.Euclidean != nil {
		info := *p.Euclidean
		c.Euclidean = &info
	}
	return c
}

// Onsets returns the indices of active steps in ascending order.
func (p Pattern) Onsets() []int {
	onsets := make([]int, 0, len(p.Steps))
	for i, on := range p.Steps {
		if on {
			onsets = append(onsets, i)
		}
	}
	return onsets
}

func (p Pattern) OnsetCount() int {
	n := 0
	for _, on := range p.Steps {
		if on {
			n++
		}
	}
	return n
}

// Density is the fraction of active steps.
func (p Pattern) Density() float64 {
	if p.StepCount == 0 {
		return 0
	}
	return float64(p.OnsetCount()) / float64(p.StepCount)
}

// Equal compares step structure only; provenance is ignored.
func (p Pattern) Equal(other Pattern) bool {
	if p.StepCount != other.StepCount || len(p.Steps) != len(other.Steps) {
		return false
	}
	for i := range p.Steps {
		if p.Steps[i] != other.Steps[i] {
			return false
		}
	}
	return true
}

// Binary renders steps as '1'/'0' characters.
func (p Pattern) Binary() string {
	var sb strings.Builder
	sb.Grow(len(p.Steps))
	for _, on := range p.Steps {
		if on {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Hex reads the steps as a binary number, first step most significant.
func (p Pattern) Hex() string {
	if len(p.Steps) == 0 {
		return "0x0"
	}
	n := new(big.Int)
	for _, on := range p.Steps {
		n.Lsh(n, 1)
		if on {
			n.SetBit(n, 0, 1)
		}
	}
	return "0x" + strings.ToUpper(n.Text(16))
}

func (p Pattern) String() string {
	return fmt.Sprintf("%s [%s]", p.Formula, p.Binary())
}

// rotate returns out[i] = steps[(i-offset) mod n].
func rotate(steps []bool, offset int) []bool {
	n := len(steps)
	out := make([]bool, n)
	if n == 0 {
		return out
	}
	offset = mod(offset, n)
	for i := range out {
		out[i] = steps[mod(i-offset, n)]
	}
	return out
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
