// Package config resolves where an IAPS installation lives on disk.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variables recognized across the toolkit. A .env file in the
// working directory is honored by the CLI.
const (
	EnvDataDir     = "IAPS_DIR"
	EnvScoringFile = "IAPS_SCORING_FILE"
	EnvImagesDir   = "IAPS_IMAGES_DIR"
)

// Stock layout of the 2008 distribution. The scoring table and the
// pictures sit in fixed subdirectories of the dataset root.
const (
	DefaultDataDir = "~/data/IAPS 2008 1-20"
	scoringRelPath = "IAPS Tech Report/AllSubjects_1-20.txt"
	imagesRelPath  = "IAPS 1-20 Images"
)

// Locations are the resolved paths of one IAPS installation.
type Locations struct {
	DataDir     string
	ScoringFile string
	ImagesDir   string
}

// Resolve returns the dataset locations from the environment, falling
// back to the stock layout under the home directory.
func Resolve() Locations {
	return ResolveWith("", "", "")
}

// ResolveWith resolves locations with explicit overrides, typically
// command line flags, taking precedence over the environment. Empty
// overrides defer to Resolve's rules. The scoring and images overrides
// win over a dataset root given at the same time.
func ResolveWith(dataDir, scoringFile, imagesDir string) Locations {
	if dataDir == "" {
		dataDir = getenv(EnvDataDir, DefaultDataDir)
	}
	dataDir = expandHome(dataDir)

	locs := Locations{
		DataDir:     dataDir,
		ScoringFile: filepath.Join(dataDir, scoringRelPath),
		ImagesDir:   filepath.Join(dataDir, imagesRelPath),
	}

	if scoringFile == "" {
		scoringFile = os.Getenv(EnvScoringFile)
	}
	if scoringFile != "" {
		locs.ScoringFile = expandHome(scoringFile)
	}

	if imagesDir == "" {
		imagesDir = os.Getenv(EnvImagesDir)
	}
	if imagesDir != "" {
		locs.ImagesDir = expandHome(imagesDir)
	}

	return locs
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
