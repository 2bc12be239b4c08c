package pattern

import "fmt"

// Euclidean distributes beats onsets as evenly as possible over steps slots
// (Bjorklund), starting on an onset, then rotates clockwise by offset.
func Euclidean(beats, steps, offset int) (Pattern, error) {
	if err := checkStepCount("steps", steps); err != nil {
		return Pattern{}, err
	}
	if beats > steps {
		beats = steps
	}
	if beats < 0 {
		beats = 0
	}

	raw := bjorklund(beats, steps)
	offset = mod(offset, steps)
	out := rotate(raw, offset)

	formula := fmt.Sprintf("E(%d,%d)", beats, steps)
	if offset != 0 {
		formula = fmt.Sprintf("E(%d,%d,%d)", beats, steps, offset)
	}

	return Pattern{
		Steps:     out,
		StepCount: steps,
		Formula:   formula,
		Euclidean: &EuclideanInfo{Beats: beats, Offset: offset},
	}, nil
}

func bjorklund(beats, steps int) []bool {
	out := make([]bool, steps)
	if beats <= 0 {
		return out
	}
	if beats >= steps {
		for i := range out {
			out[i] = true
		}
		return out
	}

	counts := make([]int, 0, 8)
	remainders := []int{beats}
	divisor := steps - beats
	level := 0
	for {
		counts = append(counts, divisor/remainders[level])
		remainders = append(remainders, divisor%remainders[level])
		divisor = remainders[level]
		level++
		if remainders[level] <= 1 {
			break
		}
	}
	counts = append(counts, divisor)

	// Group sequences are built bottom-up: group l is counts[l] copies of
	// group l-1 followed by group l-2 when remainders[l] != 0. Group -1 is a
	// single rest and group -2 a single onset.
	prev2, prev1 := []bool{true}, []bool{false}
	var cur []bool
	for l := 0; l <= level; l++ {
		cur = make([]bool, 0, counts[l]*len(prev1)+len(prev2))
		for i := 0; i < counts[l]; i++ {
			cur = append(cur, prev1...)
		}
		if remainders[l] != 0 {
			cur = append(cur, prev2...)
		}
		prev2, prev1 = prev1, cur
	}

	copy(out, cur)

	first := -1
	for i, on := range out {
		if on {
			first = i
			break
		}
	}
	if first <= 0 {
		return out
	}
	return rotate(out, -first)
}
