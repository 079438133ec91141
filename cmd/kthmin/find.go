package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/kbukum/kthmin/errors"
	"github.com/kbukum/kthmin/logger"
)

func newFindCmd(configPath *string) *cobra.Command {
	var (
		path    string
		k       int
		asJSON  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the k-th smallest value of a source",
		Example: `  kthmin find --path data.csv -n 2
  kthmin find --path s3://bucket/data.xlsx -n 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			// stdout carries the answer only.
			cfg.Logging.Output = "stderr"
			if !verbose {
				cfg.Logging.Level = "warn"
			}
			log := logger.New(&cfg.Logging, cfg.Name)

			a, err := newApp(cmd.Context(), cfg, log, nil)
			if err != nil {
				return err
			}
			res, err := a.finder.Find(cmd.Context(), path, k)
			if err != nil {
				return describe(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			_, err = fmt.Fprintf(out, "%d\n", res.Value)
			if err == nil && verbose {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "rank %d of %d numbers\n", res.K, res.TotalCount)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Source locator (local path or s3://bucket/key)")
	cmd.Flags().IntVarP(&k, "n", "n", 0, "1-based rank of the value to find")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print {n, result, totalNumbers} as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline details to stderr")
	_ = cmd.MarkFlagRequired("path")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

// describe renders an AppError as "CODE: message" for the terminal.
func describe(err error) error {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return err
	}
	return fmt.Errorf("%s: %s", appErr.Code, appErr.Message)
}
