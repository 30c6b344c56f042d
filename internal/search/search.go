// Package search finds catalog records by description text. Descriptions
// in the scoring table are short uppercase nouns ("Snake", "EroticCouple"),
// so lookup has to survive case, spacing and small spelling differences.
package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/affectlab/iaps"
)

// Result is one record ranked against a query.
type Result struct {
	Record iaps.Record
	Score  float64 // 1.0 exact down to minScore
	Method string  // "exact", "substring" or "fuzzy"
}

// Results below this similarity are noise, not matches.
const minScore = 0.5

// ByDescription ranks catalog records against a free text query: exact
// matches first, then substring containment, then decreasing Levenshtein
// similarity. At most limit results are returned; limit of zero means all.
func ByDescription(c *iaps.Catalog, query string, limit int) []Result {
	queryNorm := normalize(query)
	if queryNorm == "" {
		return nil
	}

	var results []Result
	for _, r := range c.Records() {
		descNorm := normalize(r.Description)
		if descNorm == "" {
			continue
		}

		switch {
		case descNorm == queryNorm:
			results = append(results, Result{Record: r, Score: 1.0, Method: "exact"})
		case strings.Contains(descNorm, queryNorm) || strings.Contains(queryNorm, descNorm):
			results = append(results, Result{Record: r, Score: 0.8, Method: "substring"})
		default:
			if score := similarity(descNorm, queryNorm); score >= minScore {
				results = append(results, Result{Record: r, Score: score, Method: "fuzzy"})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

var punctuation = regexp.MustCompile(`[^\w\s]`)

// normalize lowercases, strips punctuation and collapses whitespace.
func normalize(text string) string {
	text = strings.ToLower(text)
	text = punctuation.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// similarity converts Levenshtein distance to a 0.0 to 1.0 ratio.
func similarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := max(len(s1), len(s2))
	return 1.0 - (float64(distance) / float64(maxLen))
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	rows := len(s1) + 1
	cols := len(s2) + 1
	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
	}

	for i := 0; i < rows; i++ {
		matrix[i][0] = i
	}
	for j := 0; j < cols; j++ {
		matrix[0][j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			deletion := matrix[i-1][j] + 1
			insertion := matrix[i][j-1] + 1
			substitution := matrix[i-1][j-1] + cost

			matrix[i][j] = min(deletion, min(insertion, substitution))
		}
	}

	return matrix[rows-1][cols-1]
}
