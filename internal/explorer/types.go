package explorer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/rhythmlab/internal/analysis"
	"github.com/san-kum/rhythmlab/internal/combine"
	"github.com/san-kum/rhythmlab/internal/pattern"
)

var (
	// ErrInvalidParams indicates exploration bounds the generators cannot serve.
	ErrInvalidParams = errors.New("explorer: invalid parameters")

	// ErrRunning indicates a second run was requested on a busy explorer.
	ErrRunning = errors.New("explorer: exploration already running")
)

// Target selects which scored candidates are kept.
type Target string

const (
	TargetPerfect Target = "perfect"
	TargetNear    Target = "near"
	TargetAll     Target = "all"
)

// ParseTarget accepts perfect, near or all.
func ParseTarget(s string) (Target, error) {
	switch t := Target(strings.ToLower(strings.TrimSpace(s))); t {
	case TargetPerfect, TargetNear, TargetAll:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown target balance %q", ErrInvalidParams, s)
	}
}

// Accepts reports whether a balance satisfies the target. Patterns with no
// onsets are never accepted.
func (t Target) Accepts(b analysis.Balance) bool {
	if b.OnsetCount == 0 {
		return false
	}
	switch t {
	case TargetPerfect:
		return b.IsPerfectlyBalanced
	case TargetNear:
		return b.Score == analysis.Excellent || b.Score == analysis.Good
	case TargetAll:
		return true
	default:
		return false
	}
}

// Params bounds one exploration run.
type Params struct {
	MinSides           int    `json:"minSides"`
	MaxSides           int    `json:"maxSides"`
	MaxCombinationSize int    `json:"maxCombinationSize"`
	Target             Target `json:"targetBalance"`
}

func (p Params) Validate() error {
	if p.MinSides < pattern.MinVertices {
		return fmt.Errorf("%w: min sides %d below %d", ErrInvalidParams, p.MinSides, pattern.MinVertices)
	}
	if p.MaxSides > pattern.MaxVertices {
		return fmt.Errorf("%w: max sides %d above %d", ErrInvalidParams, p.MaxSides, pattern.MaxVertices)
	}
	if p.MinSides > p.MaxSides {
		return fmt.Errorf("%w: min sides %d above max sides %d", ErrInvalidParams, p.MinSides, p.MaxSides)
	}
	if p.MaxCombinationSize < 2 {
		return fmt.Errorf("%w: combination size %d below 2", ErrInvalidParams, p.MaxCombinationSize)
	}
	if _, err := ParseTarget(string(p.Target)); err != nil {
		return err
	}
	return nil
}

func (p Params) sides() []int {
	sides := make([]int, 0, p.MaxSides-p.MinSides+1)
	for v := p.MinSides; v <= p.MaxSides; v++ {
		sides = append(sides, v)
	}
	return sides
}

// Status is the lifecycle of an explorer: idle, then running, then stopped
// or completed.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusStopped   Status = "stopped"
	StatusCompleted Status = "completed"
)

// Result is one accepted candidate.
type Result struct {
	Polygons         []int            `json:"polygons"`
	Offsets          []int            `json:"offsets"`
	SubtractVertices []int            `json:"subtractVertices"`
	SubtractOffsets  []int            `json:"subtractOffsets,omitempty"`
	Pattern          *combine.Result  `json:"pattern"`
	Balance          analysis.Balance `json:"balance"`
	IsInteresting    bool             `json:"isInteresting"`
	Quality          int              `json:"quality"`
}

// Progress is a point-in-time view of a run.
type Progress struct {
	Current int     `json:"currentCombination"`
	Total   int     `json:"totalCombinations"`
	Percent float64 `json:"percent"`
	Found   int     `json:"found"`
	Status  Status  `json:"status"`
}

// State is a snapshot of everything an explorer owns.
type State struct {
	Results            []Result `json:"results"`
	Status             Status   `json:"status"`
	ShouldStop         bool     `json:"shouldStop"`
	TotalCombinations  int      `json:"totalCombinations"`
	CurrentCombination int      `json:"currentCombination"`
}

func (s State) IsRunning() bool {
	return s.Status == StatusRunning
}
