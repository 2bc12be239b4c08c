package config

import (
	"sort"

	"github.com/san-kum/rhythmlab/internal/explorer"
)

// Presets are named search scopes. Unset fields take their defaults in
// GetPreset.
var Presets = map[string]*Config{
	"quick": {
		MinSides: 3, MaxSides: 8, MaxCombinationSize: 2, Target: explorer.TargetPerfect,
	},
	"standard": {
		MinSides: 3, MaxSides: 12, MaxCombinationSize: 3, Target: explorer.TargetPerfect,
	},
	"deep": {
		MinSides: 2, MaxSides: 16, MaxCombinationSize: 4, Target: explorer.TargetPerfect,
		Runner: RunnerConfig{OffsetTrials: 8, MaxCombinations: 20000},
	},
	"subtractive": {
		MinSides: 3, MaxSides: 10, MaxCombinationSize: 3, Target: explorer.TargetAll,
		Runner: RunnerConfig{OffsetTrials: 6},
	},
	"near": {
		MinSides: 3, MaxSides: 12, MaxCombinationSize: 3, Target: explorer.TargetNear,
	},
}

// GetPreset returns a copy of the named preset filled with defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.MinSides = p.MinSides
	cfg.MaxSides = p.MaxSides
	cfg.MaxCombinationSize = p.MaxCombinationSize
	cfg.Target = p.Target
	if p.Runner.YieldEvery > 0 {
		cfg.Runner.YieldEvery = p.Runner.YieldEvery
	}
	if p.Runner.YieldPause > 0 {
		cfg.Runner.YieldPause = p.Runner.YieldPause
	}
	if p.Runner.OffsetTrials > 0 {
		cfg.Runner.OffsetTrials = p.Runner.OffsetTrials
	}
	if p.Runner.MaxCombinations > 0 {
		cfg.Runner.MaxCombinations = p.Runner.MaxCombinations
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
