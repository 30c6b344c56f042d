package iaps

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Filter selects catalog records by affect. Category and ValenceRange are
// the two implementations; ParseFilter builds either from command line
// text.
type Filter interface {
	// Matches reports whether a record satisfies the filter. Records
	// without a valence rating match nothing.
	Matches(Record) bool
	// Validate checks the filter is usable before any records are read.
	Validate() error
	// String renders the filter for error messages and manifests.
	String() string
}

// Category is a coarse affect label assigned by thresholding a picture's
// mean valence.
type Category string

// The affect categories, with the thresholds IAPS studies conventionally
// use. The bands leave gaps (3 to 4 and 6 to 7) so that borderline
// pictures belong to no category.
const (
	// Positive holds pictures with mean valence of at least 7.0.
	Positive Category = "positive"
	// Negative holds pictures with mean valence of at most 3.0.
	Negative Category = "negative"
	// Neutral holds pictures with mean valence inside [4.0, 6.0].
	Neutral Category = "neutral"
)

// Valence cutoffs behind the category labels.
const (
	PositiveThreshold = 7.0
	NegativeThreshold = 3.0
	NeutralLow        = 4.0
	NeutralHigh       = 6.0
)

// Bounds of the SAM rating scale.
const (
	ScaleMin = 1.0
	ScaleMax = 9.0
)

// Categories returns the defined affect categories.
func Categories() []Category {
	return []Category{Positive, Negative, Neutral}
}

// Valid reports whether c is a defined affect category.
func (c Category) Valid() bool {
	switch c {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// Matches reports whether a record falls inside the category's valence
// band. NaN valence matches nothing.
func (c Category) Matches(r Record) bool {
	switch c {
	case Positive:
		return r.ValenceMean >= PositiveThreshold
	case Negative:
		return r.ValenceMean <= NegativeThreshold
	case Neutral:
		return r.ValenceMean >= NeutralLow && r.ValenceMean <= NeutralHigh
	}
	return false
}

// Validate fails with ErrInvalidCategory for labels outside the taxonomy.
func (c Category) Validate() error {
	if !c.Valid() {
		return &CategoryError{Label: string(c)}
	}
	return nil
}

func (c Category) String() string {
	return string(c)
}

// ValenceRange is an inclusive band on mean valence, for studies that cut
// the scale somewhere other than the stock categories.
type ValenceRange struct {
	Low  float64
	High float64
}

// Matches reports whether a record's mean valence lies inside the band.
func (v ValenceRange) Matches(r Record) bool {
	return r.ValenceMean >= v.Low && r.ValenceMean <= v.High
}

// Validate fails with ErrInvalidCategory when the band can match nothing.
func (v ValenceRange) Validate() error {
	if math.IsNaN(v.Low) || math.IsNaN(v.High) {
		return &RangeError{Low: v.Low, High: v.High, Reason: "bound is not a number"}
	}
	if v.Low > v.High {
		return &RangeError{Low: v.Low, High: v.High, Reason: "low bound above high bound"}
	}
	return nil
}

func (v ValenceRange) String() string {
	return fmt.Sprintf("valence [%g, %g]", v.Low, v.High)
}

// ParseFilter interprets command line filter text: an affect category
// label such as "negative", or inclusive low:high valence bounds such as
// "4.5:6.0". Unrecognized text fails with ErrInvalidCategory.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)

	if lo, hi, ok := strings.Cut(s, ":"); ok {
		low, lowErr := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		high, highErr := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if lowErr != nil || highErr != nil {
			return nil, newRangeParseError(s)
		}
		r := ValenceRange{Low: low, High: high}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		return r, nil
	}

	c := Category(strings.ToLower(s))
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
