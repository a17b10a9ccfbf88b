// Package mood classifies a slider value into one of six mood symbols.
//
// The table is an explicit ascending threshold list; a value maps to the
// symbol of the first threshold that is >= the value. The same rule is
// applied to fractional per-day averages.
package mood

import (
	"errors"
	"fmt"
)

// MaxValue is the top of the slider scale.
const MaxValue = 120

var (
	ErrInvalidValue  = errors.New("mood value out of range (must be in 1..120)")
	ErrUnknownSymbol = errors.New("unknown mood symbol")
)

type bucket struct {
	threshold int
	symbol    string
}

// Ascending thresholds; order matters for the first-match rule.
var buckets = []bucket{
	{20, "😩"},
	{40, "😞"},
	{60, "🙂"},
	{80, "😄"},
	{100, "😆"},
	{120, "😊"},
}

// Classify maps a slider value to its mood symbol.
// Values outside (0, 120] are a caller error and are rejected.
func Classify(value int) (string, error) {
	if value <= 0 || value > MaxValue {
		return "", fmt.Errorf("classify %d: %w", value, ErrInvalidValue)
	}
	for _, b := range buckets {
		if value <= b.threshold {
			return b.symbol, nil
		}
	}
	// unreachable: the last threshold equals MaxValue
	return "", fmt.Errorf("classify %d: %w", value, ErrInvalidValue)
}

// ClassifyAverage applies the threshold rule to a fractional value, as
// produced by per-day averaging. Same range contract as Classify.
func ClassifyAverage(value float64) (string, error) {
	if value <= 0 || value > MaxValue {
		return "", fmt.Errorf("classify average %.2f: %w", value, ErrInvalidValue)
	}
	for _, b := range buckets {
		if value <= float64(b.threshold) {
			return b.symbol, nil
		}
	}
	return "", fmt.Errorf("classify average %.2f: %w", value, ErrInvalidValue)
}

// SliderValue is the reverse lookup used to pre-position the slider when a
// stored entry is reopened for editing. It returns the first threshold whose
// symbol matches; symbols are unique in the table, so first match is the match.
func SliderValue(symbol string) (int, error) {
	for _, b := range buckets {
		if b.symbol == symbol {
			return b.threshold, nil
		}
	}
	return 0, fmt.Errorf("slider value for %q: %w", symbol, ErrUnknownSymbol)
}
