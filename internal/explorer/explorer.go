package explorer

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/rhythmlab/internal/analysis"
	"github.com/san-kum/rhythmlab/internal/combine"
	"github.com/san-kum/rhythmlab/internal/logging"
	"github.com/san-kum/rhythmlab/internal/pattern"
)

const (
	DefaultYieldEvery   = 10
	DefaultYieldPause   = time.Millisecond
	DefaultOffsetTrials = 5

	// DefaultMaxCombinations caps candidates tested in one run.
	DefaultMaxCombinations = 5000
)

// Option configures an Explorer.
type Option func(*Explorer)

func WithLogger(l *slog.Logger) Option {
	return func(e *Explorer) { e.logger = l }
}

// WithYieldEvery sets how many candidates run between suspension points.
func WithYieldEvery(n int) Option {
	return func(e *Explorer) {
		if n > 0 {
			e.yieldEvery = n
		}
	}
}

// WithYieldPause sets the pause at each suspension point. Zero yields the
// processor without sleeping.
func WithYieldPause(d time.Duration) Option {
	return func(e *Explorer) {
		if d >= 0 {
			e.yieldPause = d
		}
	}
}

// WithOffsetTrials sets how many offset vectors are tried per subset.
func WithOffsetTrials(n int) Option {
	return func(e *Explorer) {
		if n > 0 {
			e.offsetTrials = n
		}
	}
}

// WithMaxCombinations caps the candidates tested in a run.
func WithMaxCombinations(n int) Option {
	return func(e *Explorer) {
		if n > 0 {
			e.maxCombinations = n
		}
	}
}

// WithProgress registers a callback invoked at every suspension point and
// once when the run ends. It runs on the exploring goroutine.
func WithProgress(fn func(Progress)) Option {
	return func(e *Explorer) { e.onProgress = fn }
}

// Explorer searches combinations of regular polygons for balanced patterns.
// One Explorer owns one result set; run concurrent searches on separate
// instances. Progress, State, Stop and Reset are safe to call from other
// goroutines while a run is in flight.
type Explorer struct {
	logger          *slog.Logger
	yieldEvery      int
	yieldPause      time.Duration
	offsetTrials    int
	maxCombinations int
	onProgress      func(Progress)

	shouldStop atomic.Bool

	mu         sync.Mutex
	generation int
	status     Status
	results    []Result
	total      int
	current    int
}

func New(opts ...Option) *Explorer {
	e := &Explorer{
		yieldEvery:      DefaultYieldEvery,
		yieldPause:      DefaultYieldPause,
		offsetTrials:    DefaultOffsetTrials,
		maxCombinations: DefaultMaxCombinations,
		status:          StatusIdle,
		results:         make([]Result, 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.New("explorer")
	}
	return e
}

// ExploreAllCombinations tests every k-subset (2 <= k <= MaxCombinationSize)
// of vertex counts in [MinSides, MaxSides] at several rotations and keeps
// the candidates matching p.Target. It replaces any previous results.
//
// Stop ends the run early without an error. Cancelling ctx also ends it and
// returns ctx.Err() together with the results found so far.
func (e *Explorer) ExploreAllCombinations(ctx context.Context, p Params) ([]Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sides := p.sides()
	maxK := min(p.MaxCombinationSize, len(sides))
	total := estimateTotal(len(sides), maxK, e.offsetTrials, e.maxCombinations)

	e.mu.Lock()
	if e.status == StatusRunning {
		e.mu.Unlock()
		return nil, ErrRunning
	}
	e.shouldStop.Store(false)
	e.generation++
	gen := e.generation
	e.status = StatusRunning
	e.results = make([]Result, 0)
	e.total = total
	e.current = 0
	e.mu.Unlock()

	e.logger.Info("exploration started",
		"min_sides", p.MinSides, "max_sides", p.MaxSides,
		"max_size", p.MaxCombinationSize, "target", p.Target, "total", total)
	start := time.Now()

	status, err := e.run(ctx, gen, sides, maxK, total, p.Target)

	e.mu.Lock()
	if e.generation == gen {
		e.status = status
	}
	found := len(e.results)
	e.mu.Unlock()

	e.logger.Info("exploration finished",
		"status", status, "found", found, "elapsed", time.Since(start))
	e.notify()

	return e.Results(), err
}

func (e *Explorer) run(ctx context.Context, gen int, sides []int, maxK, total int, target Target) (Status, error) {
	tested := 0
	status := StatusCompleted
	var runErr error

	for k := 2; k <= maxK; k++ {
		combinations(sides, k, func(subset []int) bool {
			plan := planGrid(subset)
			seen := make(map[string]bool, e.offsetTrials)

			for trial := 0; trial < e.offsetTrials; trial++ {
				if e.shouldStop.Load() {
					status = StatusStopped
					return false
				}
				if err := ctx.Err(); err != nil {
					status, runErr = StatusStopped, err
					return false
				}
				if tested >= total {
					return false
				}

				offsets := plan.offsets(trial)
				if key := offsetKey(offsets); !seen[key] {
					seen[key] = true
					e.publish(gen, e.testCandidate(plan, offsets, target))
				}

				tested++
				e.advance(gen)
				if tested%e.yieldEvery == 0 {
					e.yield(ctx)
				}
			}
			return true
		})
		if status != StatusCompleted || tested >= total {
			break
		}
	}
	return status, runErr
}

// testCandidate scores the union of the subset's polygons and, for three or
// more polygons, the union of all but the smallest minus the smallest.
// Generator and combiner failures are logged and yield no results.
func (e *Explorer) testCandidate(plan gridPlan, offsets []int, target Target) []Result {
	polys, err := plan.polygons(offsets)
	if err != nil {
		e.logger.Warn("candidate skipped", "polygons", plan.vertices, "offsets", offsets, "error", err)
		return nil
	}

	var found []Result

	combined, err := combine.Multiple(polys)
	if err != nil {
		e.logger.Warn("candidate skipped", "polygons", plan.vertices, "offsets", offsets, "error", err)
	} else if r, ok := evaluate(combined, target); ok {
		r.Polygons = append([]int(nil), plan.vertices...)
		r.Offsets = append([]int(nil), offsets...)
		r.SubtractVertices = []int{}
		found = append(found, finish(r))
	}

	if len(polys) < 3 {
		return found
	}

	s := smallestIndex(plan.vertices)
	add := make([]pattern.Pattern, 0, len(polys)-1)
	add = append(add, polys[:s]...)
	add = append(add, polys[s+1:]...)

	sub, err := combine.WithSubtraction(add, polys[s:s+1])
	if err != nil {
		e.logger.Warn("subtractive candidate skipped", "polygons", plan.vertices, "offsets", offsets, "error", err)
		return found
	}
	if r, ok := evaluate(sub, target); ok {
		r.Polygons = without(plan.vertices, s)
		r.Offsets = without(offsets, s)
		r.SubtractVertices = []int{plan.vertices[s]}
		r.SubtractOffsets = []int{offsets[s]}
		found = append(found, finish(r))
	}
	return found
}

func evaluate(c *combine.Result, target Target) (Result, bool) {
	b := analysis.BalanceOf(c.Pattern)
	if !target.Accepts(b) {
		return Result{}, false
	}
	return Result{Pattern: c, Balance: b}, true
}

func finish(r Result) Result {
	r.IsInteresting = r.Balance.IsPerfectlyBalanced &&
		(r.Pattern.HasSubtraction || !anyDivides(r.Polygons))
	r.Quality = QualityScore(r)
	return r
}

func (e *Explorer) publish(gen int, found []Result) {
	if len(found) == 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.generation != gen {
		return
	}
	e.results = append(e.results, found...)
}

func (e *Explorer) advance(gen int) {
	e.mu.Lock()
	if e.generation == gen {
		e.current++
	}
	e.mu.Unlock()
}

// yield is the run's only suspension point.
func (e *Explorer) yield(ctx context.Context) {
	e.notify()
	e.logger.Debug("yield", "progress", e.Progress())

	if e.yieldPause == 0 {
		runtime.Gosched()
		return
	}
	timer := time.NewTimer(e.yieldPause)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (e *Explorer) notify() {
	if e.onProgress != nil {
		e.onProgress(e.Snapshot())
	}
}

// Stop asks a running exploration to end at its next candidate boundary.
func (e *Explorer) Stop() {
	e.shouldStop.Store(true)
}

// Reset drops all results and returns the explorer to idle. A run still in
// flight is asked to stop and its later findings are discarded.
func (e *Explorer) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == StatusRunning {
		e.shouldStop.Store(true)
	}
	e.generation++
	e.status = StatusIdle
	e.results = make([]Result, 0)
	e.total = 0
	e.current = 0
}

// Progress returns the completed share of the current or last run, 0-100.
func (e *Explorer) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.percentLocked()
}

func (e *Explorer) percentLocked() float64 {
	if e.total == 0 {
		if e.status == StatusCompleted {
			return 100
		}
		return 0
	}
	return min(100, float64(e.current)*100/float64(e.total))
}

// Snapshot returns counters and status without copying results.
func (e *Explorer) Snapshot() Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Progress{
		Current: e.current,
		Total:   e.total,
		Percent: e.percentLocked(),
		Found:   len(e.results),
		Status:  e.status,
	}
}

// State returns a copy of everything the explorer owns.
func (e *Explorer) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Results:            append([]Result(nil), e.results...),
		Status:             e.status,
		ShouldStop:         e.shouldStop.Load(),
		TotalCombinations:  e.total,
		CurrentCombination: e.current,
	}
}

func (e *Explorer) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status == StatusRunning
}

// Results returns a copy of the results in discovery order.
func (e *Explorer) Results() []Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Result{}, e.results...)
}

// SortResultsByBalance replaces the owned results with a copy sorted by
// SortByBalance and returns it.
func (e *Explorer) SortResultsByBalance() []Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.results = SortByBalance(e.results)
	return append([]Result{}, e.results...)
}

// PerfectBalanceResults returns results whose pattern is perfectly balanced.
func (e *Explorer) PerfectBalanceResults() []Result {
	return filter(e.Results(), func(r Result) bool { return r.Balance.IsPerfectlyBalanced })
}

// NearPerfectResults returns excellent and good results.
func (e *Explorer) NearPerfectResults() []Result {
	return filter(e.Results(), func(r Result) bool {
		return r.Balance.Score == analysis.Excellent || r.Balance.Score == analysis.Good
	})
}

func (e *Explorer) InterestingResults() []Result {
	return filter(e.Results(), func(r Result) bool { return r.IsInteresting })
}
