package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dispatch/cpu"
	"github.com/cwbudde/algo-dispatch/target"
)

func newMatchCmd() *cobra.Command {
	var against string

	cmd := &cobra.Command{
		Use:   "match <target>...",
		Short: "Parse target strings and check them against a snapshot",
		Long: "Parse target strings and check them against the detected snapshot.\n\n" +
			"Targets take the forms arch, arch+feature[+feature...], arch/level[+feature...]\n" +
			"and [arch|arch]+feature.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := cpu.Detect()
			if against != "" {
				r, err := target.Parse(against)
				if err != nil {
					return fmt.Errorf("--snapshot: %w", err)
				}
				s = snapshotOf(r)
			}
			return printMatches(cmd.OutOrStdout(), s, args)
		},
	}
	cmd.Flags().StringVar(&against, "snapshot", "", "check against the features of this target instead of the running CPU")
	return cmd
}

// snapshotOf returns the snapshot of a CPU with exactly r's features.
func snapshotOf(r target.Requirement) cpu.Snapshot {
	return cpu.MustSnapshot(r.Arch(), r.Closure().Features()...)
}

func printMatches(w io.Writer, s cpu.Snapshot, specs []string) error {
	fmt.Fprintf(w, "snapshot: %s\n\n", s)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tREQUIREMENT\tMATCH\tMISSING")
	for _, spec := range specs {
		reqs, err := target.ParseAll(spec)
		if err != nil {
			return err
		}
		for _, r := range reqs {
			fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", spec, r, r.Matches(s), missing(r, s))
		}
	}
	return tw.Flush()
}

func missing(r target.Requirement, s cpu.Snapshot) string {
	if r.Arch() != s.Arch() {
		return "arch " + r.Arch().String()
	}
	fs := r.Closure().Minus(s.Set()).Features()
	if len(fs) == 0 {
		return "-"
	}
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}
