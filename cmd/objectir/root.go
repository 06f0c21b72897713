package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set by build flags (-ldflags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "objectir",
	Short: "ObjectIR virtual machine",
	Long: `objectir runs and inspects ObjectIR modules: a small object-oriented
stack-machine bytecode with classes, overloaded methods, structured and
label-based control flow, and a host-function bridge standard library.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
