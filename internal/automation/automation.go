// Package automation runs scripted batches of explorations from YAML.
package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rhythmlab/internal/config"
	"github.com/san-kum/rhythmlab/internal/explorer"
)

var ErrScenario = errors.New("automation: invalid scenario")

// Scenario is a named batch of explorations sharing one runner setup.
type Scenario struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Parallel    int                 `yaml:"parallel"`
	Runner      config.RunnerConfig `yaml:"runner"`
	Steps       []ScenarioStep      `yaml:"steps"`
}

// ScenarioStep is one exploration. Preset, when set, supplies the starting
// values; the remaining non-zero fields override it.
type ScenarioStep struct {
	Name               string          `yaml:"name"`
	Preset             string          `yaml:"preset"`
	MinSides           int             `yaml:"min_sides"`
	MaxSides           int             `yaml:"max_sides"`
	MaxCombinationSize int             `yaml:"max_combination_size"`
	Target             explorer.Target `yaml:"target"`
}

// LoadScenario reads a scenario from a YAML file. Omitted runner keys keep
// their defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	scenario := Scenario{Runner: config.DefaultRunner()}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Config resolves a step against its preset and the defaults.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		if cfg = config.GetPreset(s.Preset); cfg == nil {
			return nil, fmt.Errorf("%w: unknown preset %q", ErrScenario, s.Preset)
		}
	}
	if s.MinSides != 0 {
		cfg.MinSides = s.MinSides
	}
	if s.MaxSides != 0 {
		cfg.MaxSides = s.MaxSides
	}
	if s.MaxCombinationSize != 0 {
		cfg.MaxCombinationSize = s.MaxCombinationSize
	}
	if s.Target != "" {
		cfg.Target = s.Target
	}
	return cfg, nil
}

// Plan returns the step names and resolved parameters in step order.
// Unnamed steps are called step-N.
func (sc *Scenario) Plan() ([]string, []explorer.Params, error) {
	if len(sc.Steps) == 0 {
		return nil, nil, fmt.Errorf("%w: no steps", ErrScenario)
	}

	names := make([]string, len(sc.Steps))
	params := make([]explorer.Params, len(sc.Steps))
	seen := make(map[string]bool, len(sc.Steps))

	for i, step := range sc.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		if seen[name] {
			return nil, nil, fmt.Errorf("%w: duplicate step name %q", ErrScenario, name)
		}
		seen[name] = true

		cfg, err := step.Config()
		if err != nil {
			return nil, nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := cfg.ExploreParams().Validate(); err != nil {
			return nil, nil, fmt.Errorf("step %d (%s): %w", i+1, name, err)
		}
		names[i] = name
		params[i] = cfg.ExploreParams()
	}
	return names, params, nil
}

// Options returns explorer options for the scenario's runner settings.
func (sc *Scenario) Options(logger *slog.Logger) []explorer.Option {
	cfg := config.DefaultConfig()
	cfg.Runner = sc.Runner
	return cfg.ExplorerOptions(logger)
}

// RunScenario runs every step through an ensemble and returns the reports
// in step order.
func RunScenario(ctx context.Context, sc *Scenario, logger *slog.Logger) ([]explorer.RunReport, error) {
	names, params, err := sc.Plan()
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("scenario started", "name", sc.Name, "steps", len(names), "parallel", sc.Parallel)
	}
	return explorer.NewEnsemble(sc.Parallel, sc.Options(logger)...).Run(ctx, names, params)
}

// SidesSweep builds a scenario that repeats one search while MaxSides
// grows from from to to, showing how the result count scales with range.
func SidesSweep(minSides, from, to, size int, target explorer.Target) (*Scenario, error) {
	if from < minSides || to < from {
		return nil, fmt.Errorf("%w: sweep range %d..%d with min sides %d", ErrScenario, from, to, minSides)
	}

	sc := &Scenario{
		Name:   fmt.Sprintf("sides-%d-%d", from, to),
		Runner: config.DefaultRunner(),
	}
	for maxSides := from; maxSides <= to; maxSides++ {
		sc.Steps = append(sc.Steps, ScenarioStep{
			Name:               fmt.Sprintf("max-%d", maxSides),
			MinSides:           minSides,
			MaxSides:           maxSides,
			MaxCombinationSize: size,
			Target:             target,
		})
	}
	return sc, nil
}

// Summary counts what one report found.
type Summary struct {
	Name        string
	Found       int
	Perfect     int
	Interesting int
	BestQuality int
}

func Summarize(r explorer.RunReport) Summary {
	s := Summary{Name: r.Name, Found: len(r.Results)}
	for _, res := range r.Results {
		if res.Balance.IsPerfectlyBalanced {
			s.Perfect++
		}
		if res.IsInteresting {
			s.Interesting++
		}
		s.BestQuality = max(s.BestQuality, res.Quality)
	}
	return s
}
