package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/rhythmlab/internal/config"
	"github.com/san-kum/rhythmlab/internal/logging"
)

var (
	dataDir   string
	logLevel  string
	logFormat string
	outFormat string

	// pattern commands
	offset    int
	expansion int
	showRing  bool
	ringSize  int
	svgPath   string
	svgSize   int

	// explore
	minSides        int
	maxSides        int
	maxSize         int
	targetBalance   string
	offsetTrials    int
	maxCombinations int
	yieldEvery      int
	yieldPause      string
	configFile      string
	preset          string
	limit           int
	live            bool
	noSave          bool
	parallel        int
	scenarioFile    string
	sidesRange      string

	// show
	asJSON bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rhythmlab",
		Short:        "polygon rhythm and balance explorer",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if logFormat != "text" && logFormat != "json" {
				return fmt.Errorf("unknown log format: %s", logFormat)
			}
			logging.Init(level, logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&outFormat, "format", "ascii", "table format (ascii, md)")

	polygonCmd := &cobra.Command{
		Use:   "polygon [vertices]",
		Short: "generate a regular polygon rhythm",
		Args:  cobra.ExactArgs(1),
		RunE:  runPolygon,
	}
	polygonCmd.Flags().IntVar(&offset, "offset", 0, "rotation in steps")
	polygonCmd.Flags().IntVar(&expansion, "expansion", 1, "steps per vertex")
	addRingFlags(polygonCmd)

	euclidCmd := &cobra.Command{
		Use:   "euclid [beats] [steps]",
		Short: "generate a Euclidean rhythm",
		Args:  cobra.ExactArgs(2),
		RunE:  runEuclid,
	}
	euclidCmd.Flags().IntVar(&offset, "offset", 0, "rotation in steps")
	addRingFlags(euclidCmd)

	combineCmd := &cobra.Command{
		Use:   "combine [expression]",
		Short: "parse and combine patterns, e.g. 'P(3,0)+P(5,0)-P(2,0)'",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCombine,
	}
	addRingFlags(combineCmd)

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [expression]",
		Short: "plot the normalized Fourier magnitudes of a pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSpectrum,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "search polygon combinations for balanced rhythms",
		Args:  cobra.NoArgs,
		RunE:  runExplore,
	}
	addExploreFlags(exploreCmd)
	exploreCmd.Flags().BoolVar(&live, "live", false, "show live progress")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset...]",
		Short: "run several presets, a scenario file or a sides range in parallel",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&parallel, "parallel", 0, "concurrent explorations (0 = GOMAXPROCS)")
	sweepCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file path (yaml)")
	sweepCmd.Flags().StringVar(&sidesRange, "sides", "", "sweep max sides over a range, e.g. 6:12")
	sweepCmd.Flags().IntVar(&minSides, "min", config.DefaultMinSides, "smallest vertex count for --sides")
	sweepCmd.Flags().IntVar(&maxSize, "size", 2, "most polygons per combination for --sides")
	sweepCmd.Flags().StringVar(&targetBalance, "target", string(config.DefaultTarget), "target balance for --sides")
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store runs")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored explorations",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored exploration",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&limit, "limit", 20, "results to show (0 = all)")
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print the run as JSON")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list exploration presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	factorsCmd := &cobra.Command{
		Use:   "factors [n...]",
		Short: "prime factors, gcd and lcm of step counts",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFactors,
	}

	rootCmd.AddCommand(polygonCmd, euclidCmd, combineCmd, spectrumCmd, exploreCmd, sweepCmd, runsCmd, showCmd, presetsCmd, factorsCmd)
	return rootCmd
}

func addRingFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&showRing, "circle", false, "draw the pattern on a circle")
	cmd.Flags().IntVar(&ringSize, "circle-size", 24, "circle width in characters")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write the pattern circle to an SVG file")
	cmd.Flags().IntVar(&svgSize, "svg-size", 320, "SVG image size in pixels")
}

func addExploreFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&minSides, "min", config.DefaultMinSides, "smallest vertex count")
	cmd.Flags().IntVar(&maxSides, "max", config.DefaultMaxSides, "largest vertex count")
	cmd.Flags().IntVar(&maxSize, "size", config.DefaultMaxCombinationSize, "most polygons per combination")
	cmd.Flags().StringVar(&targetBalance, "target", string(config.DefaultTarget), "target balance (perfect, near, all)")
	cmd.Flags().IntVar(&offsetTrials, "trials", 0, "offset trials per subset")
	cmd.Flags().IntVar(&maxCombinations, "max-combinations", 0, "cap on candidates tested")
	cmd.Flags().IntVar(&yieldEvery, "yield-every", 0, "candidates between yields")
	cmd.Flags().StringVar(&yieldPause, "yield-pause", "", "pause at each yield, e.g. 1ms")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&limit, "limit", 20, "results to show (0 = all)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
}
