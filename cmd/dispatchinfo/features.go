package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	vmcpu "github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dispatch/cpu"
)

func newFeaturesCmd() *cobra.Command {
	var (
		detector string
		disable  []string
		noDetect bool
	)

	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print the detected feature snapshot and processor details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := cpu.Detect()
			if cmd.Flags().Changed("detector") || cmd.Flags().Changed("disable") || cmd.Flags().Changed("no-detect") {
				s = cpu.NewProbe(cpu.Config{NoDetect: noDetect, Detector: detector, Disable: disable})()
			}
			return printFeatures(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVar(&detector, "detector", cpu.DetectorXSys, "probe backend: xsys or cpuid")
	cmd.Flags().StringSliceVar(&disable, "disable", nil, "features to mask out")
	cmd.Flags().BoolVar(&noDetect, "no-detect", false, "report the empty snapshot")
	return cmd
}

func printFeatures(w io.Writer, s cpu.Snapshot) error {
	info := cpu.Describe()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "GOOS:\t%s\n", runtime.GOOS)
	fmt.Fprintf(tw, "GOARCH:\t%s (%s)\n", runtime.GOARCH, cpu.Current)
	fmt.Fprintf(tw, "NumCPU:\t%d\n", runtime.NumCPU())
	if info.Brand != "" {
		fmt.Fprintf(tw, "Processor:\t%s (%s)\n", info.Brand, info.Vendor)
		fmt.Fprintf(tw, "Cores:\t%d physical, %d logical\n", info.PhysicalCores, info.LogicalCores)
		fmt.Fprintf(tw, "Cache:\tline %d B, L1d %s, L2 %s, L3 %s\n",
			info.CacheLine, formatSize(info.L1D), formatSize(info.L2), formatSize(info.L3))
	}
	fmt.Fprintf(tw, "GOAMD64 level:\t%d\n", cpu.AMD64Level)
	fmt.Fprintf(tw, "Guaranteed:\t%s\n", featureList(cpu.Guaranteed()))
	fmt.Fprintf(tw, "Detected:\t%s\n", featureList(s))
	fmt.Fprintf(tw, "Count:\t%d\n", len(s.Features()))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Suggested lanes:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  TYPE\tLANES")
	printLanes[float32](tw, "float32", s)
	printLanes[float64](tw, "float64", s)
	printLanes[int8](tw, "int8", s)
	printLanes[int16](tw, "int16", s)
	printLanes[int32](tw, "int32", s)
	printLanes[int64](tw, "int64", s)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return printVecmathView(w)
}

func printLanes[T cpu.Lane](w io.Writer, name string, s cpu.Snapshot) {
	if n, ok := cpu.SuggestedLanes[T](s); ok {
		fmt.Fprintf(w, "  %s\t%d\n", name, n)
		return
	}
	fmt.Fprintf(w, "  %s\tscalar\n", name)
}

// printVecmathView shows the coarser view algo-vecmath's kernels act on.
func printVecmathView(w io.Writer) error {
	f := vmcpu.DetectFeatures()
	best := vmcpu.SIMDNone
	for _, level := range []vmcpu.SIMDLevel{vmcpu.SIMDSSE2, vmcpu.SIMDAVX, vmcpu.SIMDAVX2, vmcpu.SIMDAVX512, vmcpu.SIMDNEON} {
		if vmcpu.Supports(f, level) {
			best = level
		}
	}

	fmt.Fprintln(w, "algo-vecmath:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  level\t%s\n", best)
	fmt.Fprintf(tw, "  sse2/avx/avx2/avx512\t%v/%v/%v/%v\n", f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512)
	fmt.Fprintf(tw, "  neon\t%v\n", f.HasNEON)
	return tw.Flush()
}

func featureList(s cpu.Snapshot) string {
	if s.IsEmpty() {
		return "(none)"
	}
	names := make([]string, 0, len(s.Features()))
	for _, f := range s.Features() {
		names = append(names, f.String())
	}
	return strings.Join(names, " ")
}

func formatSize(n int) string {
	switch {
	case n <= 0:
		return "?"
	case n%(1<<20) == 0:
		return fmt.Sprintf("%d MiB", n>>20)
	case n%(1<<10) == 0:
		return fmt.Sprintf("%d KiB", n>>10)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
