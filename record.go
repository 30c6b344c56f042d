package iaps

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is one row of the normative ratings table: a picture identifier
// with its mean and standard deviation on the valence, arousal and
// dominance SAM scales (1 to 9).
//
// A rating missing from the table is NaN. NaN compares false against any
// threshold, so unrated pictures fall out of every affect filter.
type Record struct {
	// ID is the picture number as the tech report prints it, "2070" for a
	// base picture or "6570.1" for a variant.
	ID          string
	Description string

	ValenceMean float64
	ValenceSD   float64
	ArousalMean float64
	ArousalSD   float64

	// Dominance was normed twice for part of the set; the second round is
	// NaN for most pictures.
	Dominance1Mean float64
	Dominance1SD   float64
	Dominance2Mean float64
	Dominance2SD   float64

	// Set is the tech report picture set the ratings were collected in.
	Set int
}

// Rated reports whether the picture has a valence rating. Unrated
// pictures never match an affect filter.
func (r Record) Rated() bool {
	return !math.IsNaN(r.ValenceMean)
}

// NormalizeID canonicalizes a picture number to tech report form:
// integral values lose the decimal ("2070.0" becomes "2070"), variants
// keep exactly one ("6570.10" becomes "6570.1").
func NormalizeID(raw string) (string, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", fmt.Errorf("invalid picture number %q: %w", raw, err)
	}
	return FormatID(n), nil
}

// FormatID renders a numeric picture number in tech report form.
func FormatID(n float64) string {
	if n == math.Trunc(n) {
		return strconv.Itoa(int(n))
	}
	return strconv.FormatFloat(n, 'f', 1, 64)
}
