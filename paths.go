package iaps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// A handful of pictures ship with an uppercase extension on the
// distribution media; everything else is lowercase .jpg.
var uppercaseExtension = map[string]bool{
	"6560":   true,
	"6561":   true,
	"6570":   true,
	"6570.1": true,
}

// ImagePath returns the picture file for an ID under an images directory.
// Only the name is computed; nothing checks that the file exists. Run
// MissingImages after unpacking the distribution when you want that
// guarantee.
func ImagePath(imagesDir, id string) string {
	ext := ".jpg"
	if uppercaseExtension[id] {
		ext = ".JPG"
	}
	return filepath.Join(imagesDir, id+ext)
}

// MissingImages returns the records whose picture file is absent from the
// catalog's images directory, in table order. Sampling never performs
// this check itself.
func MissingImages(c *Catalog) []Record {
	var missing []Record
	for _, r := range c.records {
		if _, err := os.Stat(c.ImagePath(r)); err != nil {
			missing = append(missing, r)
		}
	}
	return missing
}

// UnlistedImages returns jpg files in the catalog's images directory that
// no record refers to, sorted by name. Strays usually mean the scoring
// table and the picture set come from different distribution versions.
func UnlistedImages(c *Catalog) ([]string, error) {
	entries, err := os.ReadDir(c.imagesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read images directory: %w", err)
	}

	known := make(map[string]bool, len(c.records))
	for _, r := range c.records {
		known[filepath.Base(c.ImagePath(r))] = true
	}

	var strays []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.ToLower(filepath.Ext(name)) != ".jpg" {
			continue
		}
		if !known[name] {
			strays = append(strays, name)
		}
	}
	sort.Strings(strays)
	return strays, nil
}
