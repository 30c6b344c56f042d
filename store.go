package iaps

import (
	"sort"
	"sync"
)

// Store holds catalogs keyed by scoring file path with load-or-reuse
// semantics: the first Load for a path parses the file, later Loads hand
// back the same catalog. Hosts juggling several scoring tables (picture
// set subsets, converted copies) share one Store across goroutines.
type Store struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{
		catalogs: make(map[string]*Catalog),
	}
}

// Load returns the catalog for a scoring path, reading the file on first
// use. Failed loads are not cached; the next Load retries.
func (s *Store) Load(scoringPath, imagesDir string) (*Catalog, error) {
	s.mu.RLock()
	c, ok := s.catalogs[scoringPath]
	s.mu.RUnlock()
	if ok {
		return c, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.catalogs[scoringPath]; ok {
		return c, nil
	}
	c, err := LoadCatalog(scoringPath, imagesDir)
	if err != nil {
		return nil, err
	}
	s.catalogs[scoringPath] = c
	return c, nil
}

// Get returns a previously loaded catalog without touching the disk.
func (s *Store) Get(scoringPath string) (*Catalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.catalogs[scoringPath]
	return c, ok
}

// Paths returns the scoring paths with a loaded catalog, sorted.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.catalogs))
	for path := range s.catalogs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Drop forgets the catalog for a path, forcing the next Load to re-read
// the file.
func (s *Store) Drop(scoringPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.catalogs, scoringPath)
}
