package iaps

import (
	"log/slog"
	"sync"

	"github.com/affectlab/iaps/internal/config"
)

// Catalog is the in-memory ratings table for one scoring file. It is
// immutable once loaded, so any number of goroutines may filter and
// sample from it without locking.
type Catalog struct {
	records   []Record
	byID      map[string]int
	imagesDir string
	source    string
}

// LoadCatalog reads a scoring table and returns its catalog. imagesDir is
// where ImagePath resolves picture files; it is recorded, not checked.
func LoadCatalog(scoringPath, imagesDir string) (*Catalog, error) {
	records, err := ReadScoring(scoringPath)
	if err != nil {
		return nil, err
	}

	c := NewCatalog(records, imagesDir)
	c.source = scoringPath
	slog.Debug("Catalog loaded", "path", scoringPath, "records", len(records))
	return c, nil
}

// NewCatalog builds a catalog from already-parsed records. Most callers
// want LoadCatalog or Default instead.
func NewCatalog(records []Record, imagesDir string) *Catalog {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		byID[r.ID] = i
	}
	return &Catalog{records: records, byID: byID, imagesDir: imagesDir}
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Source returns the scoring file the catalog was loaded from, empty for
// catalogs built with NewCatalog.
func (c *Catalog) Source() string {
	return c.source
}

// ImagesDir returns the directory ImagePath resolves picture files in.
func (c *Catalog) ImagesDir() string {
	return c.imagesDir
}

// Records returns a copy of all records in table order.
func (c *Catalog) Records() []Record {
	records := make([]Record, len(c.records))
	copy(records, c.records)
	return records
}

// Get returns the record for a picture number. The number is normalized
// first, so "2070.0" finds "2070".
func (c *Catalog) Get(id string) (Record, bool) {
	norm, err := NormalizeID(id)
	if err != nil {
		return Record{}, false
	}
	i, ok := c.byID[norm]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Filter returns the records matching an affect filter, in table order.
// The filter is applied as given; use FilterCategory or FilterValence for
// validated variants.
func (c *Catalog) Filter(f Filter) []Record {
	var matching []Record
	for _, r := range c.records {
		if f.Matches(r) {
			matching = append(matching, r)
		}
	}
	return matching
}

// FilterCategory returns the records in an affect category. Labels
// outside the taxonomy fail with ErrInvalidCategory.
func (c *Catalog) FilterCategory(cat Category) ([]Record, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return c.Filter(cat), nil
}

// FilterValence returns the records with mean valence inside [low, high].
func (c *Catalog) FilterValence(low, high float64) ([]Record, error) {
	r := ValenceRange{Low: low, High: high}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return c.Filter(r), nil
}

// ImagePath resolves a record's picture file under the catalog's images
// directory.
func (c *Catalog) ImagePath(r Record) string {
	return ImagePath(c.imagesDir, r.ID)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the process-wide catalog, reading it on first use from
// the locations the environment configures (IAPS_DIR and friends). The
// load happens exactly once; every later call reuses the outcome,
// including a failed one.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		locs := config.Resolve()
		defaultCatalog, defaultErr = LoadCatalog(locs.ScoringFile, locs.ImagesDir)
	})
	return defaultCatalog, defaultErr
}
