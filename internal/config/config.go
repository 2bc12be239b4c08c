package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rhythmlab/internal/explorer"
	"github.com/san-kum/rhythmlab/internal/logging"
)

const (
	DefaultMinSides           = 3
	DefaultMaxSides           = 12
	DefaultMaxCombinationSize = 3
	DefaultTarget             = explorer.TargetPerfect
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultDataDir            = ".rhythmlab"
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	MinSides           int             `yaml:"min_sides"`
	MaxSides           int             `yaml:"max_sides"`
	MaxCombinationSize int             `yaml:"max_combination_size"`
	Target             explorer.Target `yaml:"target"`
	Runner             RunnerConfig    `yaml:"runner"`
	LogLevel           string          `yaml:"log_level"`
	LogFormat          string          `yaml:"log_format"`
	DataDir            string          `yaml:"data_dir"`
}

// RunnerConfig tunes how an exploration is paced and bounded.
type RunnerConfig struct {
	YieldEvery      int           `yaml:"yield_every"`
	YieldPause      time.Duration `yaml:"yield_pause"`
	OffsetTrials    int           `yaml:"offset_trials"`
	MaxCombinations int           `yaml:"max_combinations"`
}

func DefaultRunner() RunnerConfig {
	return RunnerConfig{
		YieldEvery:      explorer.DefaultYieldEvery,
		YieldPause:      explorer.DefaultYieldPause,
		OffsetTrials:    explorer.DefaultOffsetTrials,
		MaxCombinations: explorer.DefaultMaxCombinations,
	}
}

func DefaultConfig() *Config {
	return &Config{
		MinSides:           DefaultMinSides,
		MaxSides:           DefaultMaxSides,
		MaxCombinationSize: DefaultMaxCombinationSize,
		Target:             DefaultTarget,
		Runner:             DefaultRunner(),
		LogLevel:           DefaultLogLevel,
		LogFormat:          DefaultLogFormat,
		DataDir:            DefaultDataDir,
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.ExploreParams().Validate(); err != nil {
		return err
	}
	r := c.Runner
	if r.YieldEvery < 1 || r.OffsetTrials < 1 || r.MaxCombinations < 1 {
		return fmt.Errorf("%w: runner counts must be positive", ErrInvalid)
	}
	if r.YieldPause < 0 {
		return fmt.Errorf("%w: negative yield pause %s", ErrInvalid, r.YieldPause)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

func (c *Config) ExploreParams() explorer.Params {
	return explorer.Params{
		MinSides:           c.MinSides,
		MaxSides:           c.MaxSides,
		MaxCombinationSize: c.MaxCombinationSize,
		Target:             c.Target,
	}
}

// ExplorerOptions translates the runner settings into explorer options.
func (c *Config) ExplorerOptions(logger *slog.Logger) []explorer.Option {
	opts := []explorer.Option{
		explorer.WithYieldEvery(c.Runner.YieldEvery),
		explorer.WithYieldPause(c.Runner.YieldPause),
		explorer.WithOffsetTrials(c.Runner.OffsetTrials),
		explorer.WithMaxCombinations(c.Runner.MaxCombinations),
	}
	if logger != nil {
		opts = append(opts, explorer.WithLogger(logger))
	}
	return opts
}
