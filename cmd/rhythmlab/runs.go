package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/rhythmlab/internal/config"
	"github.com/san-kum/rhythmlab/internal/format"
	"github.com/san-kum/rhythmlab/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.RunsTable(runs, format.ParseMode(outFormat)))
	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	data, err := st.Export(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if asJSON {
		return storage.WriteJSON(w, data)
	}

	mode := format.ParseMode(outFormat)
	fmt.Fprintln(w, format.RunsTable([]storage.RunMetadata{data.Run}, mode))
	fmt.Fprintln(w, format.ResultsTable(data.Results, mode, limit))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	tb := format.NewTable(format.ParseMode(outFormat))
	tb.Header("Preset", "Sides", "Size", "Target", "Trials", "Max")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		tb.Row(name, fmt.Sprintf("%d-%d", p.MinSides, p.MaxSides), p.MaxCombinationSize,
			p.Target, p.Runner.OffsetTrials, p.Runner.MaxCombinations)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	return nil
}
