package explorer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunReport is the outcome of one run in an ensemble.
type RunReport struct {
	Name    string
	Params  Params
	Results []Result
	State   State
}

// Ensemble runs independent explorations concurrently, one Explorer each.
type Ensemble struct {
	limit int
	opts  []Option
}

// NewEnsemble creates an ensemble running at most limit explorations at
// once. A non-positive limit means GOMAXPROCS.
func NewEnsemble(limit int, opts ...Option) *Ensemble {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Ensemble{limit: limit, opts: opts}
}

// Run explores every named parameter set and returns reports in input
// order. Invalid parameters fail the whole ensemble before any run starts.
// If ctx is cancelled, the reports gathered so far are returned with the
// context error.
func (en *Ensemble) Run(ctx context.Context, names []string, params []Params) ([]RunReport, error) {
	if len(names) != len(params) {
		return nil, fmt.Errorf("%w: %d names for %d parameter sets", ErrInvalidParams, len(names), len(params))
	}
	for i, p := range params {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
	}

	reports := make([]RunReport, len(params))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(en.limit)

	for i, p := range params {
		g.Go(func() error {
			ex := New(en.opts...)
			results, err := ex.ExploreAllCombinations(gctx, p)
			reports[i] = RunReport{
				Name:    names[i],
				Params:  p,
				Results: SortByBalance(results),
				State:   ex.State(),
			}
			if err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}
			return nil
		})
	}

	err := g.Wait()
	return reports, err
}
