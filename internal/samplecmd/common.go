// Package samplecmd holds the subcommands of the iaps CLI.
package samplecmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/affectlab/iaps"
	"github.com/affectlab/iaps/internal/config"
)

// catalogs caches loaded scoring tables for the life of the process.
var catalogs = iaps.NewStore()

// catalogFlags are the dataset location flags every subcommand takes.
// Flags win over the environment, the environment over the stock layout.
type catalogFlags struct {
	dataDir     string
	scoringFile string
	imagesDir   string
}

func (f *catalogFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "IAPS dataset root (env IAPS_DIR)")
	cmd.Flags().StringVar(&f.scoringFile, "scoring", "", "Path to the scoring table (env IAPS_SCORING_FILE)")
	cmd.Flags().StringVar(&f.imagesDir, "images-dir", "", "Directory holding the pictures (env IAPS_IMAGES_DIR)")
}

// open resolves the dataset locations and loads the catalog.
func (f *catalogFlags) open() (*iaps.Catalog, error) {
	locs := config.ResolveWith(f.dataDir, f.scoringFile, f.imagesDir)
	c, err := catalogs.Load(locs.ScoringFile, locs.ImagesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// formatRating renders a rating for terminal output, "-" when it was
// never collected.
func formatRating(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
