package analysis

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/rhythmlab/internal/pattern"
)

// Score buckets a balance magnitude.
type Score string

const (
	Perfect   Score = "perfect"
	Excellent Score = "excellent"
	Good      Score = "good"
	Fair      Score = "fair"
	Poor      Score = "poor"
	Unknown   Score = "unknown"
)

// Upper bounds (exclusive) of each score bucket.
const (
	PerfectThreshold   = 0.001
	ExcellentThreshold = 0.05
	GoodThreshold      = 0.15
	FairThreshold      = 0.4
)

// Rank orders scores from best (0) to worst; unrecognized scores rank last.
func (s Score) Rank() int {
	switch s {
	case Perfect:
		return 0
	case Excellent:
		return 1
	case Good:
		return 2
	case Fair:
		return 3
	case Poor:
		return 4
	default:
		return 5
	}
}

// Classify maps a normalized magnitude to its score bucket.
func Classify(magnitude float64) Score {
	switch {
	case magnitude < PerfectThreshold:
		return Perfect
	case magnitude < ExcellentThreshold:
		return Excellent
	case magnitude < GoodThreshold:
		return Good
	case magnitude < FairThreshold:
		return Fair
	default:
		return Poor
	}
}

type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Balance describes the center of gravity of a pattern's onsets placed as
// unit vectors around a circle.
type Balance struct {
	Magnitude           float64     `json:"magnitude"`
	Score               Score       `json:"balanceScore"`
	Coordinates         Coordinates `json:"coordinates"`
	Angle               float64     `json:"angle"`
	OnsetCount          int         `json:"onsetCount"`
	IsPerfectlyBalanced bool        `json:"isPerfectlyBalanced"`
}

// CalculateBalance sums e^(i*2*pi*k/stepCount) over every onset k and
// normalizes by the onset count. Steps beyond stepCount are ignored; a
// non-positive stepCount means len(steps).
//
// A pattern with no onsets has magnitude 0 and is reported as perfectly
// balanced. This is a convention, not a geometric result.
func CalculateBalance(steps []bool, stepCount int) Balance {
	if stepCount <= 0 || stepCount > len(steps) {
		stepCount = len(steps)
	}

	var sum complex128
	onsets := 0
	for k := 0; k < stepCount; k++ {
		if !steps[k] {
			continue
		}
		sum += cmplx.Exp(complex(0, 2*math.Pi*float64(k)/float64(stepCount)))
		onsets++
	}

	if onsets == 0 {
		return Balance{Score: Perfect, IsPerfectlyBalanced: true}
	}

	center := sum / complex(float64(onsets), 0)
	magnitude := cmplx.Abs(center)
	score := Classify(magnitude)

	return Balance{
		Magnitude:           magnitude,
		Score:               score,
		Coordinates:         Coordinates{X: real(center), Y: imag(center)},
		Angle:               math.Atan2(imag(center), real(center)),
		OnsetCount:          onsets,
		IsPerfectlyBalanced: score == Perfect,
	}
}

// BalanceOf scores a pattern.
func BalanceOf(p pattern.Pattern) Balance {
	return CalculateBalance(p.Steps, p.StepCount)
}
