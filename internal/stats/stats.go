// Package stats summarizes a loaded catalog: category sizes and the
// spread of each rating scale.
package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/affectlab/iaps"
)

// ScaleStats summarizes one rating scale across the catalog. Pictures
// without a value on the scale are not counted.
type ScaleStats struct {
	Rated int     `json:"rated"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
}

// Extreme identifies a picture at one end of the valence scale.
type Extreme struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Valence     float64 `json:"valence"`
}

// CatalogStats is the full summary of one catalog.
type CatalogStats struct {
	Records    int            `json:"records"`
	Sets       int            `json:"sets"`
	Categories map[string]int `json:"categories"`

	Valence    ScaleStats `json:"valence"`
	Arousal    ScaleStats `json:"arousal"`
	Dominance1 ScaleStats `json:"dominance1"`
	Dominance2 ScaleStats `json:"dominance2"`

	MostPositive Extreme `json:"most_positive"`
	MostNegative Extreme `json:"most_negative"`
}

// Collect computes summary statistics for a catalog.
func Collect(c *iaps.Catalog) *CatalogStats {
	stats := &CatalogStats{
		Records:    c.Len(),
		Categories: make(map[string]int),
	}
	for _, cat := range iaps.Categories() {
		stats.Categories[string(cat)] = 0
	}

	sets := make(map[int]bool)
	var valence, arousal, dominance1, dominance2 accumulator

	for _, r := range c.Records() {
		sets[r.Set] = true
		for _, cat := range iaps.Categories() {
			if cat.Matches(r) {
				stats.Categories[string(cat)]++
			}
		}

		valence.add(r.ValenceMean)
		arousal.add(r.ArousalMean)
		dominance1.add(r.Dominance1Mean)
		dominance2.add(r.Dominance2Mean)

		if !r.Rated() {
			continue
		}
		if stats.MostPositive.ID == "" || r.ValenceMean > stats.MostPositive.Valence {
			stats.MostPositive = Extreme{ID: r.ID, Description: r.Description, Valence: r.ValenceMean}
		}
		if stats.MostNegative.ID == "" || r.ValenceMean < stats.MostNegative.Valence {
			stats.MostNegative = Extreme{ID: r.ID, Description: r.Description, Valence: r.ValenceMean}
		}
	}

	stats.Sets = len(sets)
	stats.Valence = valence.stats()
	stats.Arousal = arousal.stats()
	stats.Dominance1 = dominance1.stats()
	stats.Dominance2 = dominance2.stats()
	return stats
}

// PrintSummary prints a formatted summary to stdout.
func (s *CatalogStats) PrintSummary() {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("IAPS CATALOG SUMMARY")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Records: %d\n", s.Records)
	fmt.Printf("Picture Sets: %d\n", s.Sets)
	fmt.Println()

	fmt.Println("AFFECT CATEGORIES")
	fmt.Println(strings.Repeat("-", 70))
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-10s %d\n", name, s.Categories[name])
	}
	fmt.Println()

	fmt.Println("RATING SCALES")
	fmt.Println(strings.Repeat("-", 70))
	printScale("Valence", s.Valence)
	printScale("Arousal", s.Arousal)
	printScale("Dominance 1", s.Dominance1)
	printScale("Dominance 2", s.Dominance2)
	fmt.Println()

	if s.MostPositive.ID != "" {
		fmt.Printf("Most positive: %s (%s) valence %.2f\n",
			s.MostPositive.ID, s.MostPositive.Description, s.MostPositive.Valence)
		fmt.Printf("Most negative: %s (%s) valence %.2f\n",
			s.MostNegative.ID, s.MostNegative.Description, s.MostNegative.Valence)
	}
	fmt.Println(strings.Repeat("=", 70))
}

// SaveToJSON writes the summary to a JSON file.
func (s *CatalogStats) SaveToJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("failed to encode stats to JSON: %w", err)
	}
	return nil
}

func printScale(name string, s ScaleStats) {
	if s.Rated == 0 {
		fmt.Printf("  %-12s no ratings\n", name)
		return
	}
	fmt.Printf("  %-12s rated %4d  min %.2f  max %.2f  mean %.2f\n",
		name, s.Rated, s.Min, s.Max, s.Mean)
}

// accumulator folds one rating scale, ignoring NaN.
type accumulator struct {
	n   int
	min float64
	max float64
	sum float64
}

func (a *accumulator) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if a.n == 0 || v < a.min {
		a.min = v
	}
	if a.n == 0 || v > a.max {
		a.max = v
	}
	a.sum += v
	a.n++
}

func (a *accumulator) stats() ScaleStats {
	if a.n == 0 {
		return ScaleStats{}
	}
	return ScaleStats{
		Rated: a.n,
		Min:   a.min,
		Max:   a.max,
		Mean:  a.sum / float64(a.n),
	}
}
