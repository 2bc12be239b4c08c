package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rhythmlab/internal/analysis"
	"github.com/san-kum/rhythmlab/internal/export"
	"github.com/san-kum/rhythmlab/internal/format"
	"github.com/san-kum/rhythmlab/internal/notation"
	"github.com/san-kum/rhythmlab/internal/numtheory"
	"github.com/san-kum/rhythmlab/internal/pattern"
	"github.com/san-kum/rhythmlab/internal/viz"
)

func intArgs(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %s", a)
		}
		out[i] = n
	}
	return out, nil
}

func printPattern(w io.Writer, p pattern.Pattern) error {
	fmt.Fprint(w, format.PatternTable(p, analysis.BalanceOf(p), format.ParseMode(outFormat)))
	fmt.Fprintln(w)
	if showRing {
		fmt.Fprint(w, viz.Circle(p, ringSize).String())
	}
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.PatternSVG(p, svgSize)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(w, "svg written to %s\n", svgPath)
	}
	return nil
}

func runPolygon(cmd *cobra.Command, args []string) error {
	n, err := intArgs(args)
	if err != nil {
		return err
	}
	p, err := pattern.Polygon(n[0], offset, expansion)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p.Polygon.Name)
	return printPattern(cmd.OutOrStdout(), p)
}

func runEuclid(cmd *cobra.Command, args []string) error {
	n, err := intArgs(args)
	if err != nil {
		return err
	}
	p, err := pattern.Euclidean(n[0], n[1], offset)
	if err != nil {
		return err
	}
	return printPattern(cmd.OutOrStdout(), p)
}

func runCombine(cmd *cobra.Command, args []string) error {
	r, err := notation.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if r.IsCombined {
		fmt.Fprintf(w, "lcm %d from %d patterns", r.LCMUsed, len(r.OriginalPatterns))
		if r.HasSubtraction {
			fmt.Fprintf(w, ", %d subtracted", len(r.Subtracted))
		}
		fmt.Fprintln(w)
	}
	return printPattern(w, r.Pattern)
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	r, err := notation.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	mags := analysis.Spectrum(r.Steps)
	if len(mags) < 2 {
		return fmt.Errorf("pattern too short for a spectrum: %d steps", r.StepCount)
	}

	graph := asciigraph.Plot(mags,
		asciigraph.Height(10),
		asciigraph.Width(max(len(mags)*2, 40)),
		asciigraph.Caption(fmt.Sprintf("|F(k)|/onsets for %s", r.Formula)),
	)
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, graph)
	fmt.Fprintf(w, "\nbalance (k=1): %.6f\n", mags[1])
	return nil
}

func runFactors(cmd *cobra.Command, args []string) error {
	nums, err := intArgs(args)
	if err != nil {
		return err
	}

	tb := format.NewTable(format.ParseMode(outFormat))
	tb.Header("n", "Prime", "Factors", "Polygon")
	for _, n := range nums {
		factors, err := numtheory.PrimeFactors(n)
		if err != nil {
			return err
		}
		tb.Row(n, format.BoolMark(numtheory.IsPrime(n)), format.Ints(factors), pattern.PolygonName(n))
	}
	if len(nums) > 1 {
		g := nums[0]
		for _, n := range nums[1:] {
			if g, err = numtheory.GCD(g, n); err != nil {
				return err
			}
		}
		l, err := numtheory.LCMOfList(nums)
		if err != nil {
			return err
		}
		tb.Footer("gcd "+strconv.Itoa(g), "", "lcm "+strconv.Itoa(l), "")
	}
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	return nil
}
