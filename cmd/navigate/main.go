// Command navigate drives tracks through a toy detector geometry and
// reports how the navigator routed them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "navigate",
		Short: "Propagate tracks through a toy detector geometry",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newBenchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
