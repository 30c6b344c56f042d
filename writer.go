package iaps

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// WriteScoring writes records as a ratings table, for converted copies
// that load faster than the tech report text or feed other lab tools. The
// format is chosen by file extension (.csv, .jsonl, .parquet); the
// licensed tech report layout is read-only and not a target. Missing
// ratings write as "." in CSV and null in the structured formats, so a
// round trip preserves them.
func WriteScoring(path string, records []Record) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".csv":
		return writeScoringCSV(path, records)
	case ".jsonl", ".json":
		return writeScoringJSONL(path, records)
	case ".parquet":
		return writeScoringParquet(path, records)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: .csv, .jsonl, .parquet)", ext)
	}
}

func writeScoringCSV(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(scoringColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Description,
			r.ID,
			formatScore(r.ValenceMean),
			formatScore(r.ValenceSD),
			formatScore(r.ArousalMean),
			formatScore(r.ArousalSD),
			formatScore(r.Dominance1Mean),
			formatScore(r.Dominance1SD),
			formatScore(r.Dominance2Mean),
			formatScore(r.Dominance2SD),
			strconv.Itoa(r.Set),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush export file: %w", err)
	}

	slog.Debug("Wrote CSV scoring table", "path", path, "records", len(records))
	return nil
}

func writeScoringJSONL(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, r := range records {
		if err := encoder.Encode(newScoringRow(r)); err != nil {
			return fmt.Errorf("failed to encode record %s: %w", r.ID, err)
		}
	}

	slog.Debug("Wrote JSONL scoring table", "path", path, "records", len(records))
	return nil
}

func writeScoringParquet(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	rows := make([]scoringRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, newScoringRow(r))
	}

	writer := parquet.NewGenericWriter[scoringRow](file)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	slog.Debug("Wrote Parquet scoring table", "path", path, "records", len(records))
	return nil
}

// formatScore renders a rating for the delimited formats, "." for a
// rating that was never collected.
func formatScore(v float64) string {
	if math.IsNaN(v) {
		return "."
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
