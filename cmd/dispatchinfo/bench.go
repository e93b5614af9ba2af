package main

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-dispatch/cpu"
	"github.com/cwbudde/algo-dispatch/dispatch"
	"github.com/cwbudde/algo-dispatch/target"
)

type benchConfig struct {
	goroutines int
	rounds     int
	timing     bool
}

func newBenchCmd() *cobra.Command {
	cfg := benchConfig{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Race concurrent first calls on fresh tables and time the dispatch strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.goroutines, "goroutines", 64, "concurrent first callers per round")
	cmd.Flags().IntVar(&cfg.rounds, "rounds", 10, "fresh tables to race")
	cmd.Flags().BoolVar(&cfg.timing, "timing", true, "time Get, Direct and For")
	return cmd
}

type variantFn func() string

// presetTable builds a table with one variant per SIMD preset. Each variant
// returns its own name.
func presetTable(opts ...dispatch.Option) (*dispatch.Table[variantFn], error) {
	reqs := target.SIMD()
	entries := make([]dispatch.Entry[variantFn], len(reqs))
	for i, r := range reqs {
		name := r.String()
		entries[i] = dispatch.Entry[variantFn]{Name: name, Requirement: r, Fn: func() string { return name }}
	}
	fallback := variantFn(func() string { return dispatch.DefaultName })
	return dispatch.New("dispatchinfo.presets", fallback, entries, opts...)
}

type roundResult struct {
	probes   int64
	variants map[string]int
}

func raceRound(ctx context.Context, goroutines int) (roundResult, error) {
	var probes atomic.Int64
	det := cpu.NewDetector(func() cpu.Snapshot {
		probes.Add(1)
		return cpu.Detect()
	})
	table, err := presetTable(dispatch.WithDetector(det))
	if err != nil {
		return roundResult{}, err
	}

	got := make([]string, goroutines)
	start := make(chan struct{})
	g, ctx := errgroup.WithContext(ctx)
	for i := range goroutines {
		g.Go(func() error {
			select {
			case <-start:
			case <-ctx.Done():
				return ctx.Err()
			}
			got[i] = table.Get()()
			return nil
		})
	}
	close(start)
	if err := g.Wait(); err != nil {
		return roundResult{}, err
	}

	res := roundResult{probes: probes.Load(), variants: make(map[string]int)}
	for _, name := range got {
		res.variants[name]++
	}
	if table.State() != dispatch.Resolved {
		return res, fmt.Errorf("table not resolved after %d calls", goroutines)
	}
	return res, nil
}

func runBench(ctx context.Context, w io.Writer, cfg benchConfig) error {
	if cfg.goroutines < 1 || cfg.rounds < 1 {
		return fmt.Errorf("goroutines and rounds must be positive")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUND\tGOROUTINES\tPROBES\tSELECTED")
	for round := range cfg.rounds {
		res, err := raceRound(ctx, cfg.goroutines)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		if len(res.variants) != 1 {
			return fmt.Errorf("round %d: callers observed %d different variants: %v", round, len(res.variants), res.variants)
		}
		for name := range res.variants {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", round, cfg.goroutines, res.probes, name)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !cfg.timing {
		return nil
	}

	table, err := presetTable()
	if err != nil {
		return err
	}
	static := table.For(target.Best(target.SIMD(), cpu.Detect()))

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tNS/CALL")
	for _, m := range []struct {
		name string
		call func()
	}{
		{"indirect (Get)", func() { table.Get()() }},
		{"direct (Direct)", func() { table.Direct()() }},
		{"static (For)", func() { static() }},
	} {
		r := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				m.call()
			}
		})
		fmt.Fprintf(tw, "%s\t%s\n", m.name, nsPerOp(r))
	}
	return tw.Flush()
}

func nsPerOp(r testing.BenchmarkResult) string {
	if r.N == 0 {
		return "-"
	}
	return (r.T / time.Duration(r.N)).String()
}
