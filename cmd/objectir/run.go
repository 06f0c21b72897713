package main

import (
	"fmt"
	"os"

	"github.com/charlie-sans/ObjectRuntime/internal/vmerrors"
	"github.com/charlie-sans/ObjectRuntime/pkg/objectir"
	"github.com/spf13/cobra"
)

var recursionLimit int

var runCmd = &cobra.Command{
	Use:          "run <module.json>",
	Short:        "Load and run an ObjectIR module",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runModule,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&recursionLimit, "recursion-limit", 0, "maximum call-stack depth (0 uses the default)")
}

func runModule(cmd *cobra.Command, args []string) error {
	path := args[0]

	var opts []objectir.Option
	if recursionLimit > 0 {
		opts = append(opts, objectir.WithRecursionLimit(recursionLimit))
	}

	machine, err := objectir.Load(path, os.Stdout, opts...)
	if err != nil {
		return fmt.Errorf("failed to load module %s: %w", path, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", path)
	}

	_, runErr := machine.Run()
	if runErr == nil {
		return nil
	}

	if rerr, ok := runErr.(*vmerrors.RuntimeError); ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n", rerr.Kind, rerr.Message)
		if verbose && len(rerr.Trace) > 0 {
			fmt.Fprintln(os.Stderr, rerr.Trace.String())
		}
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%v\n", runErr)
	os.Exit(1)
	return nil
}
