package iaps

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// installFixture lays out a fake distribution the way the 2008 media
// unpacks: scoring table under the tech report directory, pictures in
// their own directory.
func installFixture(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()

	reportDir := filepath.Join(dataDir, "IAPS Tech Report")
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		t.Fatalf("Failed to create report dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(reportDir, "AllSubjects_1-20.txt"), []byte(reportFixture), 0644); err != nil {
		t.Fatalf("Failed to create scoring table: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dataDir, "IAPS 1-20 Images"), 0755); err != nil {
		t.Fatalf("Failed to create images dir: %v", err)
	}
	return dataDir
}

// The default catalog loads once per process, so everything touching it
// lives in this test.
func TestDefaultCatalogSampling(t *testing.T) {
	dataDir := installFixture(t)
	t.Setenv("IAPS_DIR", dataDir)

	first, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if first.Len() != 8 {
		t.Errorf("Expected 8 records, got %d", first.Len())
	}

	second, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if first != second {
		t.Error("Expected the same catalog on repeated calls")
	}

	imagesDir := filepath.Join(dataDir, "IAPS 1-20 Images")

	paths, err := SamplePositiveImages(2, WithSeed(1))
	if err != nil {
		t.Fatalf("SamplePositiveImages failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 paths, got %d", len(paths))
	}
	for _, path := range paths {
		if !strings.HasPrefix(path, imagesDir+string(filepath.Separator)) {
			t.Errorf("Expected path under %s, got %s", imagesDir, path)
		}
	}

	neutral, err := SampleNeutralImages(1, WithSeed(2))
	if err != nil {
		t.Fatalf("SampleNeutralImages failed: %v", err)
	}
	if len(neutral) != 1 {
		t.Fatalf("Expected 1 path, got %d", len(neutral))
	}

	if _, err := SampleNegativeImages(5); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData for oversized draw, got %v", err)
	}

	banded, err := SampleImages("4:6", 2, WithSeed(3))
	if err != nil {
		t.Fatalf("SampleImages failed: %v", err)
	}
	if len(banded) != 2 {
		t.Fatalf("Expected 2 paths, got %d", len(banded))
	}

	if _, err := SampleImages("calm", 1); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Expected ErrInvalidCategory for unknown label, got %v", err)
	}
}
