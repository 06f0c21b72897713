package main

import (
	"fmt"
	"os"

	"github.com/charlie-sans/ObjectRuntime/internal/module"
	"github.com/charlie-sans/ObjectRuntime/internal/moduleio"
	"github.com/spf13/cobra"
)

var disassembleCmd = &cobra.Command{
	Use:          "disassemble <module.json>",
	Short:        "Print a human-readable instruction dump of a module",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         disassembleModule,
}

func init() {
	rootCmd.AddCommand(disassembleCmd)
}

func disassembleModule(cmd *cobra.Command, args []string) error {
	path := args[0]
	mod, err := moduleio.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load module %s: %w", path, err)
	}

	for _, class := range mod.Types {
		for i := range class.Methods {
			fmt.Fprint(os.Stdout, module.Disassemble(&class.Methods[i]))
		}
	}
	return nil
}
