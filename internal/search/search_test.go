package search

import (
	"testing"

	"github.com/affectlab/iaps"
)

func testCatalog() *iaps.Catalog {
	records := []iaps.Record{
		{ID: "1050", Description: "Snake", ValenceMean: 3.46},
		{ID: "1120", Description: "Snake2", ValenceMean: 3.79},
		{ID: "2070", Description: "Baby", ValenceMean: 8.17},
		{ID: "7010", Description: "Basket", ValenceMean: 4.94},
		{ID: "3000", Description: "Mutilation", ValenceMean: 1.45},
	}
	return iaps.NewCatalog(records, "/stimuli/images")
}

func TestByDescriptionExactFirst(t *testing.T) {
	results := ByDescription(testCatalog(), "snake", 0)

	if len(results) < 2 {
		t.Fatalf("Expected at least 2 results, got %d", len(results))
	}
	if results[0].Record.ID != "1050" {
		t.Errorf("Expected exact match 1050 first, got %s", results[0].Record.ID)
	}
	if results[0].Score != 1.0 {
		t.Errorf("Expected score 1.0 for exact match, got %v", results[0].Score)
	}
	if results[0].Method != "exact" {
		t.Errorf("Expected method exact, got %s", results[0].Method)
	}

	if results[1].Record.ID != "1120" {
		t.Errorf("Expected substring match 1120 second, got %s", results[1].Record.ID)
	}
	if results[1].Method != "substring" {
		t.Errorf("Expected method substring, got %s", results[1].Method)
	}
}

func TestByDescriptionCaseInsensitive(t *testing.T) {
	results := ByDescription(testCatalog(), "SNAKE", 0)
	if len(results) == 0 {
		t.Fatal("Expected results for uppercase query")
	}
	if results[0].Record.ID != "1050" {
		t.Errorf("Expected 1050 first, got %s", results[0].Record.ID)
	}
}

func TestByDescriptionFuzzy(t *testing.T) {
	// One substitution away from Basket.
	results := ByDescription(testCatalog(), "bisket", 0)

	if len(results) == 0 {
		t.Fatal("Expected a fuzzy match for bisket")
	}
	if results[0].Record.ID != "7010" {
		t.Errorf("Expected 7010, got %s", results[0].Record.ID)
	}
	if results[0].Method != "fuzzy" {
		t.Errorf("Expected method fuzzy, got %s", results[0].Method)
	}
	if results[0].Score <= 0.5 || results[0].Score >= 1.0 {
		t.Errorf("Expected fuzzy score strictly between 0.5 and 1.0, got %v", results[0].Score)
	}
}

func TestByDescriptionLimit(t *testing.T) {
	results := ByDescription(testCatalog(), "snake", 1)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result with limit, got %d", len(results))
	}
	if results[0].Record.ID != "1050" {
		t.Errorf("Expected the best match to survive the limit, got %s", results[0].Record.ID)
	}
}

func TestByDescriptionNoMatch(t *testing.T) {
	if results := ByDescription(testCatalog(), "xylophone", 0); len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
	if results := ByDescription(testCatalog(), "   ", 0); results != nil {
		t.Errorf("Expected nil for a blank query, got %v", results)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "EroticCouple", expected: "eroticcouple"},
		{name: "strips punctuation", input: "Snake!", expected: "snake"},
		{name: "collapses whitespace", input: "  two   words  ", expected: "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name     string
		s1, s2   string
		expected int
	}{
		{name: "identical", s1: "snake", s2: "snake", expected: 0},
		{name: "one substitution", s1: "basket", s2: "bisket", expected: 1},
		{name: "insertion", s1: "baby", s2: "babby", expected: 1},
		{name: "empty left", s1: "", s2: "dog", expected: 3},
		{name: "empty right", s1: "dog", s2: "", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := levenshteinDistance(tt.s1, tt.s2); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}
