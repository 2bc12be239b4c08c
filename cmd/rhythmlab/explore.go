package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/rhythmlab/internal/automation"
	"github.com/san-kum/rhythmlab/internal/config"
	"github.com/san-kum/rhythmlab/internal/explorer"
	"github.com/san-kum/rhythmlab/internal/format"
	"github.com/san-kum/rhythmlab/internal/logging"
	"github.com/san-kum/rhythmlab/internal/storage"
	"github.com/san-kum/rhythmlab/internal/tui"
)

// exploreConfig layers preset, config file and changed flags, in that order.
func exploreConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.MinSides = minSides
	}
	if flags.Changed("max") {
		cfg.MaxSides = maxSides
	}
	if flags.Changed("size") {
		cfg.MaxCombinationSize = maxSize
	}
	if flags.Changed("target") {
		t, err := explorer.ParseTarget(targetBalance)
		if err != nil {
			return nil, err
		}
		cfg.Target = t
	}
	if flags.Changed("trials") {
		cfg.Runner.OffsetTrials = offsetTrials
	}
	if flags.Changed("max-combinations") {
		cfg.Runner.MaxCombinations = maxCombinations
	}
	if flags.Changed("yield-every") {
		cfg.Runner.YieldEvery = yieldEvery
	}
	if flags.Changed("yield-pause") {
		d, err := time.ParseDuration(yieldPause)
		if err != nil {
			return nil, fmt.Errorf("invalid yield pause: %w", err)
		}
		cfg.Runner.YieldPause = d
	}
	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyLogging re-initializes logging when the config asks for something
// other than what the root command set up.
func applyLogging(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.LogLevel == logLevel && cfg.LogFormat == logFormat {
		return nil
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := exploreConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyLogging(cmd, cfg); err != nil {
		return err
	}
	params := cfg.ExploreParams()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cfg.ExplorerOptions(logging.New("explorer"))
	if !live {
		opts = append(opts, explorer.WithProgress(progressPrinter(cmd.ErrOrStderr())))
	}
	ex := explorer.New(opts...)

	start := time.Now()
	if live {
		_, err = tui.Run(ctx, ex, params)
	} else {
		_, err = ex.ExploreAllCombinations(ctx, params)
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	elapsed := time.Since(start)

	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return err
	}

	results := ex.SortResultsByBalance()
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, format.ResultsTable(results, format.ParseMode(outFormat), limit))

	st := ex.State()
	fmt.Fprintf(w, "%s: tested %d/%d, found %d (%d perfect, %d interesting) in %s\n",
		st.Status, st.CurrentCombination, st.TotalCombinations, len(results),
		len(ex.PerfectBalanceResults()), len(ex.InterestingResults()), format.FmtDuration(elapsed))

	if noSave {
		return nil
	}
	runID, err := saveRun(cfg.DataDir, storage.Run{Name: preset, Params: params, State: st, Elapsed: elapsed})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "run id: %s\n", runID)
	return nil
}

func progressPrinter(w io.Writer) func(explorer.Progress) {
	return func(p explorer.Progress) {
		fmt.Fprintf(w, "\r%5.1f%%  %d/%d  found %d", p.Percent, p.Current, p.Total, p.Found)
	}
}

func saveRun(dir string, run storage.Run) (string, error) {
	st := storage.New(dir)
	if err := st.Init(); err != nil {
		return "", err
	}
	return st.Save(run)
}

// sweepScenario builds the scenario for a sweep: a scenario file, a max
// sides range, or the named presets (all presets when none are given).
func sweepScenario(args []string) (*automation.Scenario, error) {
	switch {
	case scenarioFile != "":
		return automation.LoadScenario(scenarioFile)
	case sidesRange != "":
		from, to, ok := strings.Cut(sidesRange, ":")
		if !ok {
			return nil, fmt.Errorf("invalid sides range: %s (want FROM:TO)", sidesRange)
		}
		bounds, err := intArgs([]string{from, to})
		if err != nil {
			return nil, err
		}
		target, err := explorer.ParseTarget(targetBalance)
		if err != nil {
			return nil, err
		}
		return automation.SidesSweep(minSides, bounds[0], bounds[1], maxSize, target)
	}

	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}
	sc := &automation.Scenario{Name: "presets", Runner: config.DefaultRunner()}
	for i, name := range names {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		if i == 0 {
			sc.Runner = cfg.Runner
		}
		sc.Steps = append(sc.Steps, automation.ScenarioStep{Name: name, Preset: name})
	}
	return sc, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	sc, err := sweepScenario(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("parallel") || sc.Parallel == 0 {
		sc.Parallel = parallel
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	reports, err := automation.RunScenario(ctx, sc, logging.New("sweep"))
	elapsed := time.Since(start)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	tb := format.NewTable(format.ParseMode(outFormat))
	tb.Header("Run", "Status", "Tested", "Found", "Perfect", "Interesting", "Best", "Run ID")
	for _, r := range reports {
		if r.Name == "" {
			continue
		}
		best := "-"
		if len(r.Results) > 0 && r.Results[0].Pattern != nil {
			best = format.Truncate(r.Results[0].Pattern.Formula, 40)
		}
		sum := automation.Summarize(r)

		runID := "-"
		if !noSave {
			runID, err = saveRun(dataDir, storage.Run{Name: r.Name, Params: r.Params, State: r.State, Elapsed: elapsed})
			if err != nil {
				return err
			}
		}
		tb.Row(r.Name, r.State.Status,
			fmt.Sprintf("%d/%d", r.State.CurrentCombination, r.State.TotalCombinations),
			sum.Found, sum.Perfect, sum.Interesting, best, runID)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	fmt.Fprintf(cmd.OutOrStdout(), "sweep %s: %d runs in %s\n", sc.Name, len(sc.Steps), format.FmtDuration(elapsed))
	return nil
}
