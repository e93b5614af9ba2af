// Command dispatchinfo reports what the dispatch engine sees on this machine.
//
// Usage:
//
//	dispatchinfo features [--detector xsys|cpuid] [--disable f1,f2]
//	dispatchinfo match <target>... [--snapshot target]
//	dispatchinfo tables
//	dispatchinfo bench [--goroutines n] [--rounds n]
//
// Examples:
//
//	dispatchinfo features --detector cpuid
//	dispatchinfo match amd64/x86-64-v3 "[amd64|386]+avx2" arm64+sve
//	dispatchinfo match amd64+avx512f --snapshot amd64/x86-64-v3
//	DISPATCH_DISABLE=avx2 dispatchinfo tables
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dispatch/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "dispatchinfo",
		Short:         "Inspect CPU feature detection and dispatch decisions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if logLevel != "" {
				logging.SetDefault(logging.NewTextLogger(cmd.ErrOrStderr(), logging.ParseLevel(logLevel)))
			}
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level for detection and resolution records (debug, info, warn, error); default from "+logging.EnvLevel)

	root.AddCommand(
		newFeaturesCmd(),
		newMatchCmd(),
		newTablesCmd(),
		newBenchCmd(),
	)
	return root
}
