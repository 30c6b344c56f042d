package samplecmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/affectlab/iaps/internal/stats"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	var flags catalogFlags
	var outputJSON string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the catalog",
		Long: `Print how many pictures each affect category holds and the spread of every
rating scale. Useful for checking that the scoring table parsed the way
the tech report intends.`,
		Example: `  # Summary of the default installation
  iaps stats

  # Summary of a converted table, also saved as JSON
  iaps stats --scoring ratings.parquet --output-json stats.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeStats(flags, outputJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&outputJSON, "output-json", "", "Also write the summary to a JSON file")

	return cmd
}

func executeStats(flags catalogFlags, outputJSON string) error {
	c, err := flags.open()
	if err != nil {
		return err
	}

	summary := stats.Collect(c)
	summary.PrintSummary()

	if outputJSON != "" {
		if err := summary.SaveToJSON(outputJSON); err != nil {
			return err
		}
		slog.Info("Stats written", "path", outputJSON)
	}

	return nil
}
