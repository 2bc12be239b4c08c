package pattern

import "fmt"

// derive wraps transformed steps in a provenance-free pattern.
func derive(steps []bool, formula string) Pattern {
	return Pattern{Steps: steps, StepCount: len(steps), Formula: formula}
}

// Rotate shifts onsets clockwise by n steps; negative n rotates back.
func (p Pattern) Rotate(n int) Pattern {
	return derive(rotate(p.Steps, n), fmt.Sprintf("rot(%s,%d)", p.Formula, n))
}

// Invert swaps onsets and rests.
func (p Pattern) Invert() Pattern {
	out := make([]bool, len(p.Steps))
	for i, on := range p.Steps {
		out[i] = !on
	}
	return derive(out, "~"+p.Formula)
}

// Reverse plays the cycle backwards.
func (p Pattern) Reverse() Pattern {
	n := len(p.Steps)
	out := make([]bool, n)
	for i, on := range p.Steps {
		out[n-1-i] = on
	}
	return derive(out, fmt.Sprintf("rev(%s)", p.Formula))
}

// Dilate stretches or squeezes the pattern onto newSteps slots, moving each
// onset i to floor(i*newSteps/stepCount). Colliding onsets merge.
func (p Pattern) Dilate(newSteps int) (Pattern, error) {
	if err := checkStepCount("newSteps", newSteps); err != nil {
		return Pattern{}, err
	}
	out := make([]bool, newSteps)
	old := len(p.Steps)
	for i, on := range p.Steps {
		if on {
			out[i*newSteps/old] = true
		}
	}
	return derive(out, fmt.Sprintf("dil(%s,%d)", p.Formula, newSteps)), nil
}

// Concentrate resamples onto newSteps slots; slot i is active when any onset
// falls inside its span of the original cycle.
func (p Pattern) Concentrate(newSteps int) (Pattern, error) {
	if err := checkStepCount("newSteps", newSteps); err != nil {
		return Pattern{}, err
	}
	out := make([]bool, newSteps)
	old := len(p.Steps)
	for i := range out {
		start := i * old / newSteps
		end := ((i+1)*old + newSteps - 1) / newSteps
		if end > old {
			end = old
		}
		for j := start; j < end; j++ {
			if p.Steps[j] {
				out[i] = true
				break
			}
		}
	}
	return derive(out, fmt.Sprintf("con(%s,%d)", p.Formula, newSteps)), nil
}
