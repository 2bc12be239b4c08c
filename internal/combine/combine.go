// Package combine merges patterns of different lengths onto a shared
// least-common-multiple grid.
package combine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/rhythmlab/internal/numtheory"
	"github.com/san-kum/rhythmlab/internal/pattern"
)

// MaxLCM bounds the combined grid size.
const MaxLCM = 1024

var (
	ErrEmpty = errors.New("combine: no patterns to combine")
	ErrRange = errors.New("combine: combined grid too large")
)

// Result is a pattern produced by combining other patterns. The embedded
// Pattern holds the merged steps on the LCM grid.
type Result struct {
	pattern.Pattern
	IsCombined       bool              `json:"isCombined"`
	OriginalPatterns []pattern.Pattern `json:"originalPatterns"`
	Subtracted       []pattern.Pattern `json:"subtracted,omitempty"`
	LCMUsed          int               `json:"lcmUsed"`
	HasSubtraction   bool              `json:"hasSubtraction"`
}

// Multiple unions the onsets of every pattern on their LCM grid. Onset p of a
// pattern with n steps lands on p*(lcm/n).
func Multiple(patterns []pattern.Pattern) (*Result, error) {
	return WithSubtraction(patterns, nil)
}

// WithSubtraction unions add, then clears every onset contributed by
// subtract. The grid is the LCM over both lists.
func WithSubtraction(add, subtract []pattern.Pattern) (*Result, error) {
	if len(add) == 0 {
		return nil, ErrEmpty
	}

	counts := make([]int, 0, len(add)+len(subtract))
	for _, p := range add {
		counts = append(counts, p.StepCount)
	}
	for _, p := range subtract {
		counts = append(counts, p.StepCount)
	}

	lcm, err := numtheory.LCMOfList(counts)
	if err != nil {
		return nil, fmt.Errorf("combine: %w", err)
	}
	if lcm > MaxLCM {
		return nil, fmt.Errorf("%w: lcm %d exceeds %d", ErrRange, lcm, MaxLCM)
	}

	steps := make([]bool, lcm)
	for _, p := range add {
		for _, pos := range expand(p, lcm) {
			steps[pos] = true
		}
	}
	for _, p := range subtract {
		for _, pos := range expand(p, lcm) {
			steps[pos] = false
		}
	}

	res := &Result{
		Pattern: pattern.Pattern{
			Steps:     steps,
			StepCount: lcm,
			Formula:   formula(add, subtract),
		},
		IsCombined:       true,
		OriginalPatterns: clonePatterns(add),
		LCMUsed:          lcm,
		HasSubtraction:   len(subtract) > 0,
	}
	if len(subtract) > 0 {
		res.Subtracted = clonePatterns(subtract)
	}
	return res, nil
}

func expand(p pattern.Pattern, lcm int) []int {
	scale := lcm / p.StepCount
	onsets := p.Onsets()
	for i := range onsets {
		onsets[i] *= scale
	}
	return onsets
}

func formula(add, subtract []pattern.Pattern) string {
	var sb strings.Builder
	for i, p := range add {
		if i > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(p.Formula)
	}
	for _, p := range subtract {
		sb.WriteByte('-')
		sb.WriteString(p.Formula)
	}
	return sb.String()
}

func clonePatterns(ps []pattern.Pattern) []pattern.Pattern {
	out := make([]pattern.Pattern, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}
