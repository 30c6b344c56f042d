package iaps

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the two ways a sampling request can be refused.
// Callers branch on these with errors.Is; the concrete types below carry
// the details.
var (
	// ErrInvalidCategory reports a filter that names no defined affect
	// category and parses as no valence range.
	ErrInvalidCategory = errors.New("invalid affect category")

	// ErrInsufficientData reports that fewer pictures match a filter than
	// were requested. Draws are all or nothing; a silently short stimulus
	// list would corrupt an experiment design.
	ErrInsufficientData = errors.New("insufficient matching pictures")
)

// CategoryError reports an unknown affect category label.
type CategoryError struct {
	Label string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("unknown affect category %q", e.Label)
}

func (e *CategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}

// RangeError reports a malformed valence range, either unparseable filter
// text or bounds that select nothing.
type RangeError struct {
	// Input is the raw filter text when parsing failed, empty when the
	// bounds themselves are at fault.
	Input     string
	Low, High float64
	Reason    string
}

func (e *RangeError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid valence range %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid valence range [%g, %g]: %s", e.Low, e.High, e.Reason)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidCategory
}

// SampleSizeError reports a draw larger than the matching subset.
type SampleSizeError struct {
	Requested int
	Available int
	Filter    string
}

func (e *SampleSizeError) Error() string {
	return fmt.Sprintf("requested %d pictures but only %d match %s",
		e.Requested, e.Available, e.Filter)
}

func (e *SampleSizeError) Is(target error) bool {
	return target == ErrInsufficientData
}

func newRangeParseError(input string) *RangeError {
	return &RangeError{
		Input:  input,
		Low:    math.NaN(),
		High:   math.NaN(),
		Reason: "want an affect category or low:high bounds",
	}
}
