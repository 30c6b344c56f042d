package samplecmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/affectlab/iaps"
	"github.com/affectlab/iaps/internal/manifest"
)

// NewSampleCmd creates the sample command
func NewSampleCmd() *cobra.Command {
	var flags catalogFlags
	var filterExpr string
	var count int
	var seed int64
	var relative bool
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw random pictures by affect category",
		Long: `Draw pictures uniformly at random, without replacement, from the slice of
the catalog matching an affect filter. The filter is a category label
(positive, negative, neutral) or inclusive low:high valence bounds.

One path per line goes to stdout, so the output pipes straight into
presentation scripts. The draw fails outright when fewer pictures match
than were requested.`,
		Example: `  # Ten positive pictures
  iaps sample --filter positive -n 10

  # A reproducible neutral draw, recorded for the experiment log
  iaps sample --filter neutral -n 24 --seed 7 --manifest stimuli.yaml

  # A custom valence band
  iaps sample --filter 4.5:5.5 -n 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var seedFlag *int64
			if cmd.Flags().Changed("seed") {
				seedFlag = &seed
			}
			return executeSample(flags, filterExpr, count, seedFlag, relative, manifestPath)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&filterExpr, "filter", "", "Affect category or low:high valence bounds (required)")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of pictures to draw")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Fix the random source for a reproducible draw")
	cmd.Flags().BoolVar(&relative, "relative", false, "Print file names instead of full paths")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Write a manifest of the draw (.yaml or .json)")

	_ = cmd.MarkFlagRequired("filter")

	return cmd
}

func executeSample(flags catalogFlags, filterExpr string, count int, seed *int64, relative bool, manifestPath string) error {
	filter, err := iaps.ParseFilter(filterExpr)
	if err != nil {
		return err
	}

	c, err := flags.open()
	if err != nil {
		return err
	}

	var opts []iaps.SamplerOption
	if seed != nil {
		opts = append(opts, iaps.WithSeed(*seed))
	}

	records, err := iaps.NewSampler(c, opts...).Sample(filter, count)
	if err != nil {
		return err
	}

	slog.Debug("Drew pictures", "filter", filter.String(), "count", len(records))

	for _, r := range records {
		path := c.ImagePath(r)
		if relative {
			path = filepath.Base(path)
		}
		fmt.Println(path)
	}

	if manifestPath != "" {
		spec := manifest.New(manifest.Config{
			ScoringFile: c.Source(),
			ImagesDir:   c.ImagesDir(),
			Filter:      filter.String(),
			SampleSize:  count,
			Seed:        seed,
		}, c, records)
		if err := manifest.Save(spec, manifestPath); err != nil {
			return err
		}
		slog.Info("Manifest written", "path", manifestPath, "pictures", len(records))
	}

	return nil
}
