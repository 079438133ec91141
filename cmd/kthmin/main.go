// Command kthmin finds the k-th smallest integer in the first column of a
// spreadsheet or delimited file, from the command line or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "kthmin",
		Short: "Find the k-th smallest value in tabular data",
		Long: `kthmin reads the first column of an .xlsx, .xlsm, .csv or .tsv source,
keeps the numeric cells (fractions truncated toward zero) and returns the
k-th smallest value.

Sources are local paths or, when enabled, s3://bucket/key locators.

Examples:
  kthmin find --path data.xlsx -n 3
  kthmin find --path s3://reports/q1.csv -n 1 --json
  kthmin serve --config ./config.yml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.yml (default: search standard locations)")

	root.AddCommand(
		newServeCmd(&configPath),
		newFindCmd(&configPath),
		newVersionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
