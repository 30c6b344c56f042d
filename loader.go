package iaps

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// The tech report table opens with a title block before the data rows.
const scoringPreambleLines = 7

// Column order of the ratings table, shared by the tech report text and
// the converted formats.
var scoringColumns = []string{
	"desc", "IAPS", "valmn", "valsd", "aromn", "arosd",
	"dom1mn", "dom1sd", "dom2mn", "dom2sd", "set",
}

// ReadScoring reads a ratings table into records. The format is chosen by
// file extension:
//
//	.txt             tech report table (AllSubjects_1-20.txt)
//	.csv             comma separated with a header row
//	.jsonl, .json    one JSON record per line
//	.parquet         Apache Parquet
//
// Missing ratings ("." in the delimited formats, null in the structured
// ones) come back as NaN. A malformed row fails the whole read; a catalog
// with silently dropped rows would skew every sample drawn from it.
func ReadScoring(path string) ([]Record, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt":
		return readScoringReport(path)
	case ".csv":
		return readScoringCSV(path)
	case ".jsonl", ".json":
		return readScoringJSONL(path)
	case ".parquet":
		return readScoringParquet(path)
	default:
		return nil, fmt.Errorf("unsupported scoring format: %s (supported: .txt, .csv, .jsonl, .parquet)", ext)
	}
}

// readScoringReport parses the tab separated table shipped in the IAPS
// tech report. Missing ratings print as "." and every value in the set
// column drags a trailing backslash.
func readScoringReport(path string) ([]Record, error) {
	slog.Debug("Opening tech report scoring table", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scoring table: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum <= scoringPreambleLines {
			continue
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := parseScoringRow(strings.Split(line, "\t"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse scoring row at line %d: %w", lineNum, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading scoring table: %w", err)
	}

	slog.Debug("Finished reading scoring table", "records", len(records), "lines", lineNum)
	return records, nil
}

// readScoringCSV reads a comma separated ratings table in the export
// column order. A leading header row is skipped.
func readScoringCSV(path string) ([]Record, error) {
	slog.Debug("Opening CSV scoring table", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scoring table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(scoringColumns)

	var records []Record
	rowNum := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read scoring table: %w", err)
		}
		rowNum++
		if rowNum == 1 && fields[0] == scoringColumns[0] {
			continue
		}

		record, err := parseScoringRow(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scoring row %d: %w", rowNum, err)
		}
		records = append(records, record)
	}

	slog.Debug("Finished reading scoring table", "records", len(records))
	return records, nil
}

// readScoringJSONL reads one JSON record per line.
func readScoringJSONL(path string) ([]Record, error) {
	slog.Debug("Opening JSONL scoring table", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scoring table: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var row scoringRow
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		record, err := row.record()
		if err != nil {
			return nil, fmt.Errorf("invalid record at line %d: %w", lineNum, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading scoring table: %w", err)
	}

	slog.Debug("Finished reading scoring table", "records", len(records))
	return records, nil
}

// readScoringParquet reads a Parquet ratings table.
func readScoringParquet(path string) ([]Record, error) {
	slog.Debug("Opening Parquet scoring table", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scoring table: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet scoring table opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[scoringRow](pf)
	defer reader.Close()

	var records []Record
	rows := make([]scoringRow, 128)
	for {
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			record, convErr := row.record()
			if convErr != nil {
				return nil, fmt.Errorf("invalid parquet record: %w", convErr)
			}
			records = append(records, record)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	slog.Debug("Finished reading scoring table", "records", len(records))
	return records, nil
}

// parseScoringRow converts one delimited row in scoringColumns order.
func parseScoringRow(fields []string) (Record, error) {
	if len(fields) != len(scoringColumns) {
		return Record{}, fmt.Errorf("expected %d columns, got %d", len(scoringColumns), len(fields))
	}

	id, err := NormalizeID(fields[1])
	if err != nil {
		return Record{}, err
	}

	var scores [8]float64
	for i, raw := range fields[2:10] {
		v, err := parseScore(raw)
		if err != nil {
			return Record{}, fmt.Errorf("column %s: %w", scoringColumns[i+2], err)
		}
		scores[i] = v
	}

	set, err := parseSet(fields[10])
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:             id,
		Description:    strings.TrimSpace(fields[0]),
		ValenceMean:    scores[0],
		ValenceSD:      scores[1],
		ArousalMean:    scores[2],
		ArousalSD:      scores[3],
		Dominance1Mean: scores[4],
		Dominance1SD:   scores[5],
		Dominance2Mean: scores[6],
		Dominance2SD:   scores[7],
		Set:            set,
	}, nil
}

// parseScore reads one rating value; "." and the empty string mean the
// rating was never collected.
func parseScore(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "." {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", raw, err)
	}
	return v, nil
}

// parseSet reads the picture set column, tolerating the backslash the
// tech report prints after every value.
func parseSet(raw string) (int, error) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), `\`)
	set, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid set %q: %w", raw, err)
	}
	return set, nil
}

// scoringRow is the wire form of a Record for the structured formats.
// Missing ratings travel as nulls rather than NaN, which JSON cannot
// carry.
type scoringRow struct {
	Description    string   `json:"desc" parquet:"desc"`
	ID             string   `json:"iaps" parquet:"iaps"`
	ValenceMean    *float64 `json:"valmn" parquet:"valmn,optional"`
	ValenceSD      *float64 `json:"valsd" parquet:"valsd,optional"`
	ArousalMean    *float64 `json:"aromn" parquet:"aromn,optional"`
	ArousalSD      *float64 `json:"arosd" parquet:"arosd,optional"`
	Dominance1Mean *float64 `json:"dom1mn" parquet:"dom1mn,optional"`
	Dominance1SD   *float64 `json:"dom1sd" parquet:"dom1sd,optional"`
	Dominance2Mean *float64 `json:"dom2mn" parquet:"dom2mn,optional"`
	Dominance2SD   *float64 `json:"dom2sd" parquet:"dom2sd,optional"`
	Set            int      `json:"set" parquet:"set"`
}

func newScoringRow(r Record) scoringRow {
	return scoringRow{
		Description:    r.Description,
		ID:             r.ID,
		ValenceMean:    nullableScore(r.ValenceMean),
		ValenceSD:      nullableScore(r.ValenceSD),
		ArousalMean:    nullableScore(r.ArousalMean),
		ArousalSD:      nullableScore(r.ArousalSD),
		Dominance1Mean: nullableScore(r.Dominance1Mean),
		Dominance1SD:   nullableScore(r.Dominance1SD),
		Dominance2Mean: nullableScore(r.Dominance2Mean),
		Dominance2SD:   nullableScore(r.Dominance2SD),
		Set:            r.Set,
	}
}

func (w scoringRow) record() (Record, error) {
	id, err := NormalizeID(w.ID)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:             id,
		Description:    strings.TrimSpace(w.Description),
		ValenceMean:    scoreValue(w.ValenceMean),
		ValenceSD:      scoreValue(w.ValenceSD),
		ArousalMean:    scoreValue(w.ArousalMean),
		ArousalSD:      scoreValue(w.ArousalSD),
		Dominance1Mean: scoreValue(w.Dominance1Mean),
		Dominance1SD:   scoreValue(w.Dominance1SD),
		Dominance2Mean: scoreValue(w.Dominance2Mean),
		Dominance2SD:   scoreValue(w.Dominance2SD),
		Set:            w.Set,
	}, nil
}

func nullableScore(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func scoreValue(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}
