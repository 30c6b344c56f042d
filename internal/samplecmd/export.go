package samplecmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/affectlab/iaps"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var flags catalogFlags
	var output string
	var filterExpr string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to csv, jsonl or parquet",
		Long: `Convert the scoring table to a format other lab tools read directly. The
output extension picks the format. Only the ratings move; the licensed
pictures are never copied.

Converted tables load back through the same commands, so a Parquet copy
can replace the tech report text everywhere.`,
		Example: `  # Full catalog as Parquet
  iaps export -o ratings.parquet

  # Only the negative pictures, as CSV
  iaps export -o negative.csv --filter negative`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeExport(flags, output, filterExpr)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, extension picks the format (required)")
	cmd.Flags().StringVar(&filterExpr, "filter", "", "Export only records matching an affect filter")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func executeExport(flags catalogFlags, output, filterExpr string) error {
	c, err := flags.open()
	if err != nil {
		return err
	}

	records := c.Records()
	if filterExpr != "" {
		filter, err := iaps.ParseFilter(filterExpr)
		if err != nil {
			return err
		}
		records = c.Filter(filter)
	}

	if err := iaps.WriteScoring(output, records); err != nil {
		return err
	}

	slog.Info("Catalog exported", "path", output, "records", len(records))
	return nil
}
