// Command objectir runs and disassembles ObjectIR modules.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
