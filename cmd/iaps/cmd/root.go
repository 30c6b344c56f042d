package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/affectlab/iaps/internal/samplecmd"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iaps",
		Short: "Sample IAPS picture stimuli by affect category",
		Long: `iaps draws picture stimuli from a local copy of the International
Affective Picture System using the normative valence ratings.

The dataset is licensed and must already be installed; point IAPS_DIR at
the distribution root (default ~/data/IAPS 2008 1-20). Commands print
file paths only. Decoding and presenting the pictures belongs to your
experiment tooling.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(samplecmd.NewSampleCmd())
	cmd.AddCommand(samplecmd.NewStatsCmd())
	cmd.AddCommand(samplecmd.NewInspectCmd())
	cmd.AddCommand(samplecmd.NewSearchCmd())
	cmd.AddCommand(samplecmd.NewVerifyCmd())
	cmd.AddCommand(samplecmd.NewExportCmd())

	return cmd
}
