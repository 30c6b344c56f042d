// Package manifest records sampling runs so a draw can be audited and
// reproduced later.
package manifest

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/affectlab/iaps"
)

// Config is the configuration section of a manifest: everything needed to
// reproduce the draw.
type Config struct {
	ScoringFile string `yaml:"scoring_file" json:"scoring_file"`
	ImagesDir   string `yaml:"images_dir" json:"images_dir"`
	Filter      string `yaml:"filter" json:"filter"`
	SampleSize  int    `yaml:"sample_size" json:"sample_size"`
	Seed        *int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	Timestamp   string `yaml:"timestamp" json:"timestamp"`
}

// Picture is one drawn stimulus. Valence is always present since every
// filter requires a rating; arousal is omitted when it was never
// collected.
type Picture struct {
	ID          string   `yaml:"id" json:"id"`
	Description string   `yaml:"description" json:"description"`
	Valence     float64  `yaml:"valence" json:"valence"`
	Arousal     *float64 `yaml:"arousal,omitempty" json:"arousal,omitempty"`
	Path        string   `yaml:"path" json:"path"`
}

// Spec is one sampling run: the configuration that produced it and the
// pictures drawn, in draw order.
type Spec struct {
	Config   Config    `yaml:"config" json:"config"`
	Pictures []Picture `yaml:"pictures" json:"pictures"`
}

// New builds a manifest from a draw. An empty timestamp is filled with
// the current time.
func New(cfg Config, c *iaps.Catalog, records []iaps.Record) *Spec {
	if cfg.Timestamp == "" {
		cfg.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}

	spec := &Spec{
		Config:   cfg,
		Pictures: make([]Picture, 0, len(records)),
	}
	for _, r := range records {
		p := Picture{
			ID:          r.ID,
			Description: r.Description,
			Valence:     r.ValenceMean,
			Path:        c.ImagePath(r),
		}
		if !math.IsNaN(r.ArousalMean) {
			arousal := r.ArousalMean
			p.Arousal = &arousal
		}
		spec.Pictures = append(spec.Pictures, p)
	}
	return spec
}

// Save writes the manifest; the extension picks YAML (.yaml, .yml) or
// JSON (.json).
func Save(spec *Spec, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return saveYAML(spec, path)
	case ".json":
		return saveJSON(spec, path)
	default:
		return fmt.Errorf("unsupported manifest format: %s (supported: .yaml, .json)", ext)
	}
}

// Load reads a manifest back.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var spec Spec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s (supported: .yaml, .json)", ext)
	}
	return &spec, nil
}

func saveYAML(spec *Spec, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(spec); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return encoder.Close()
}

func saveJSON(spec *Spec, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(spec); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return nil
}
