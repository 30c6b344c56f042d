package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/affectlab/iaps"
	"github.com/affectlab/iaps/internal/config"
)

const (
	version = "0.1.0"
)

// iaps-sample is the scriptable counterpart of the iaps CLI: plain flags,
// one path per line, nothing else on stdout.
func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "draw":
		drawCmd()
	case "count":
		countCmd()
	case "version":
		fmt.Printf("iaps-sample version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`iaps-sample - draw IAPS picture paths for experiment scripts

Usage:
  iaps-sample draw [options]    Draw random picture paths matching a filter
  iaps-sample count [options]   Count the pictures matching a filter
  iaps-sample version           Print version
  iaps-sample help              Show this help

Examples:
  # Ten positive pictures
  iaps-sample draw --filter positive --n 10

  # A reproducible draw for an experiment log
  iaps-sample draw --filter neutral --n 24 --seed 7

  # How many pictures a custom band would offer
  iaps-sample count --filter 4.5:5.5
`)
}

func drawCmd() {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	filterExpr := fs.String("filter", "", "Affect category or low:high valence bounds (required)")
	n := fs.Int("n", 10, "Number of pictures to draw")
	seed := fs.Int64("seed", 0, "Fix the random source (0 keeps it time seeded)")
	dataDir := fs.String("data-dir", "", "IAPS dataset root (env IAPS_DIR)")
	scoring := fs.String("scoring", "", "Path to the scoring table (env IAPS_SCORING_FILE)")
	imagesDir := fs.String("images-dir", "", "Directory holding the pictures (env IAPS_IMAGES_DIR)")

	if err := fs.Parse(os.Args[2:]); err != nil {
		fmt.Printf("Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *filterExpr == "" {
		fmt.Println("Error: --filter is required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	if err := executeDraw(*filterExpr, *n, *seed, *dataDir, *scoring, *imagesDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func countCmd() {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	filterExpr := fs.String("filter", "", "Affect category or low:high valence bounds (required)")
	dataDir := fs.String("data-dir", "", "IAPS dataset root (env IAPS_DIR)")
	scoring := fs.String("scoring", "", "Path to the scoring table (env IAPS_SCORING_FILE)")
	imagesDir := fs.String("images-dir", "", "Directory holding the pictures (env IAPS_IMAGES_DIR)")

	if err := fs.Parse(os.Args[2:]); err != nil {
		fmt.Printf("Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *filterExpr == "" {
		fmt.Println("Error: --filter is required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	if err := executeCount(*filterExpr, *dataDir, *scoring, *imagesDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func executeDraw(filterExpr string, n int, seed int64, dataDir, scoring, imagesDir string) error {
	filter, err := iaps.ParseFilter(filterExpr)
	if err != nil {
		return err
	}

	c, err := loadCatalog(dataDir, scoring, imagesDir)
	if err != nil {
		return err
	}

	var opts []iaps.SamplerOption
	if seed != 0 {
		opts = append(opts, iaps.WithSeed(seed))
	}

	paths, err := iaps.NewSampler(c, opts...).SamplePaths(filter, n)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Println(path)
	}
	return nil
}

func executeCount(filterExpr, dataDir, scoring, imagesDir string) error {
	filter, err := iaps.ParseFilter(filterExpr)
	if err != nil {
		return err
	}

	c, err := loadCatalog(dataDir, scoring, imagesDir)
	if err != nil {
		return err
	}

	fmt.Println(len(c.Filter(filter)))
	return nil
}

func loadCatalog(dataDir, scoring, imagesDir string) (*iaps.Catalog, error) {
	locs := config.ResolveWith(dataDir, scoring, imagesDir)
	return iaps.LoadCatalog(locs.ScoringFile, locs.ImagesDir)
}
