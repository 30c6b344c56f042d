package iaps

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// reportFixture mimics the tech report layout: a seven line preamble,
// then tab separated rows with "." for missing ratings and a backslash
// after every set number.
const reportFixture = `International Affective Picture System
All Subjects 1-20

Ratings on the 9 point SAM scales
Produced for parser testing, values are synthetic

desc	IAPS	valmn	valsd	aromn	arosd	dom1mn	dom1sd	dom2mn	dom2sd	set
Baby	2070.0	8.17	1.46	4.51	2.74	6.60	2.26	.	.	1\
Puppies	1710	8.34	1.12	5.41	2.34	6.39	2.27	.	.	1\
Snake	1050	3.46	2.15	6.87	1.68	4.16	2.01	.	.	1\
Mutilation	3000	1.45	1.20	7.26	2.10	.	.	.	.	2\
Basket	7010	4.94	1.07	1.76	1.48	6.62	1.91	.	.	2\
Mushroom	5500	5.42	1.32	3.00	2.16	6.23	1.98	5.80	1.90	3\
Suicide	6570.1	2.19	1.72	6.24	2.22	.	.	.	.	11\
Abstract	7185	.	.	4.33	2.40	.	.	.	.	20\
`

func writeReportFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "AllSubjects_1-20.txt")
	if err := os.WriteFile(path, []byte(reportFixture), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func fixtureRecords(t *testing.T) []Record {
	t.Helper()
	records, err := ReadScoring(writeReportFixture(t))
	if err != nil {
		t.Fatalf("ReadScoring failed: %v", err)
	}
	return records
}

func TestReadScoringReport(t *testing.T) {
	records := fixtureRecords(t)

	if len(records) != 8 {
		t.Fatalf("Expected 8 records, got %d", len(records))
	}

	first := records[0]
	if first.ID != "2070" {
		t.Errorf("Expected ID 2070 after normalization, got %s", first.ID)
	}
	if first.Description != "Baby" {
		t.Errorf("Expected description Baby, got %s", first.Description)
	}
	if first.ValenceMean != 8.17 {
		t.Errorf("Expected valence 8.17, got %v", first.ValenceMean)
	}
	if first.ArousalSD != 2.74 {
		t.Errorf("Expected arousal sd 2.74, got %v", first.ArousalSD)
	}
	if !math.IsNaN(first.Dominance2Mean) {
		t.Errorf("Expected missing dominance2, got %v", first.Dominance2Mean)
	}
	if first.Set != 1 {
		t.Errorf("Expected set 1, got %d", first.Set)
	}

	variant := records[6]
	if variant.ID != "6570.1" {
		t.Errorf("Expected variant ID 6570.1, got %s", variant.ID)
	}
	if variant.Set != 11 {
		t.Errorf("Expected set 11, got %d", variant.Set)
	}

	mutilation := records[3]
	if !math.IsNaN(mutilation.Dominance1Mean) {
		t.Errorf("Expected missing dominance1, got %v", mutilation.Dominance1Mean)
	}

	unrated := records[7]
	if !math.IsNaN(unrated.ValenceMean) {
		t.Errorf("Expected missing valence, got %v", unrated.ValenceMean)
	}
	if unrated.Set != 20 {
		t.Errorf("Expected set 20, got %d", unrated.Set)
	}
}

func TestReadScoringReportMalformed(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{
			name: "too few columns",
			row:  "Basket\t7010\t4.94",
		},
		{
			name: "unparseable score",
			row:  "Basket\t7010\thigh\t1.07\t1.76\t1.48\t6.62\t1.91\t.\t.\t2\\",
		},
		{
			name: "unparseable set",
			row:  "Basket\t7010\t4.94\t1.07\t1.76\t1.48\t6.62\t1.91\t.\t.\ttwo\\",
		},
		{
			name: "unparseable picture number",
			row:  "Basket\tabc\t4.94\t1.07\t1.76\t1.48\t6.62\t1.91\t.\t.\t2\\",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.txt")
			content := reportFixture + tt.row + "\n"
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			_, err := ReadScoring(path)
			if err == nil {
				t.Fatal("Expected error for malformed row, got nil")
			}
			if !strings.Contains(err.Error(), "line 16") {
				t.Errorf("Expected line number in error, got %v", err)
			}
		})
	}
}

func TestReadScoringJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.jsonl")
	testData := `{"desc":"Baby","iaps":"2070","valmn":8.17,"valsd":1.46,"aromn":4.51,"arosd":2.74,"dom1mn":6.6,"dom1sd":2.26,"dom2mn":null,"dom2sd":null,"set":1}
{"desc":"Abstract","iaps":"7185","valmn":null,"valsd":null,"aromn":4.33,"arosd":2.4,"dom1mn":null,"dom1sd":null,"dom2mn":null,"dom2sd":null,"set":20}
`
	if err := os.WriteFile(path, []byte(testData), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	records, err := ReadScoring(path)
	if err != nil {
		t.Fatalf("ReadScoring failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].ID != "2070" {
		t.Errorf("Expected ID 2070, got %s", records[0].ID)
	}
	if records[0].ValenceMean != 8.17 {
		t.Errorf("Expected valence 8.17, got %v", records[0].ValenceMean)
	}
	if !math.IsNaN(records[1].ValenceMean) {
		t.Errorf("Expected null valence to load as NaN, got %v", records[1].ValenceMean)
	}
}

func TestReadScoringJSONLMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.jsonl")
	testData := `{"desc":"Baby","iaps":"2070","valmn":8.17,"set":1}
not json at all
`
	if err := os.WriteFile(path, []byte(testData), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := ReadScoring(path)
	if err == nil {
		t.Fatal("Expected error for malformed line, got nil")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected line number in error, got %v", err)
	}
}

func TestReadScoringUnsupportedFormat(t *testing.T) {
	_, err := ReadScoring("scoring.xlsx")
	if err == nil {
		t.Error("Expected error for unsupported format, got nil")
	}
}

func TestReadScoringNonExistentFile(t *testing.T) {
	_, err := ReadScoring("/nonexistent/path/AllSubjects_1-20.txt")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}
