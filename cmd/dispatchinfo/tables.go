package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dispatch/dsp/biquad"
	"github.com/cwbudde/algo-dispatch/dsp/conv"
	"github.com/cwbudde/algo-dispatch/vecmath"
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Resolve the consumer tables and print the selected variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printTables(cmd.OutOrStdout())
		},
	}
}

func printTables(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tSTRATEGY\tSELECTED\tREQUIREMENT\tVARIANTS")
	for _, impl := range vecmath.Implementations() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			impl.Op, impl.Strategy, impl.Variant, impl.Requirement, strings.Join(impl.Variants, ","))
	}

	fmt.Fprintf(tw, "biquad.ProcessBlock\t%s\t%s\t\t\n", vecmath.StrategyIndirect, biquad.Kernel())
	convolve, correlate := conv.Implementation()
	fmt.Fprintf(tw, "conv.Convolve\t%s\t%s\t\t\n", vecmath.StrategyIndirect, convolve)
	fmt.Fprintf(tw, "conv.Correlate\t%s\t%s\t\t\n", vecmath.StrategyIndirect, correlate)
	return tw.Flush()
}
