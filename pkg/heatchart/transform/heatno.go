package transform

import (
	"fmt"
	"regexp"
	"strconv"
)

// heatNoPattern matches the digits following the heat letter of a melt id,
// e.g. "62873" in "140B62873".
var heatNoPattern = regexp.MustCompile(`[ABCWLabcwl]([0-9]+)`)

// HeatNumberPolicy selects what happens when a melt id carries no heat number.
type HeatNumberPolicy string

const (
	// HeatNumberFail aborts the pivot with ErrNoHeatNumber.
	HeatNumberFail HeatNumberPolicy = "fail"
	// HeatNumberExclude drops the melt from the table.
	HeatNumberExclude HeatNumberPolicy = "exclude"
	// HeatNumberSentinel keeps the melt with a sentinel heat number.
	HeatNumberSentinel HeatNumberPolicy = "sentinel"
)

// ParseHeatNumberPolicy parses a policy name.
func ParseHeatNumberPolicy(s string) (HeatNumberPolicy, error) {
	switch p := HeatNumberPolicy(s); p {
	case HeatNumberFail, HeatNumberExclude, HeatNumberSentinel:
		return p, nil
	case "":
		return HeatNumberFail, nil
	}
	return "", fmt.Errorf("%w: heat number policy %q (must be fail, exclude, or sentinel)", ErrInvalidOption, s)
}

// HeatNumber extracts the heat number from a melt id.
// When the pattern occurs more than once, the leftmost match wins.
func HeatNumber(meltID string) (string, bool) {
	m := heatNoPattern.FindStringSubmatch(meltID)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SortMode selects how heat numbers are ordered.
type SortMode string

const (
	// SortLexical compares heat numbers as strings, so "10" sorts before "2".
	SortLexical SortMode = "lexical"
	// SortNumeric compares heat numbers as integers.
	SortNumeric SortMode = "numeric"
)

// ParseSortMode parses a sort mode name.
func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(s); m {
	case SortLexical, SortNumeric:
		return m, nil
	case "":
		return SortLexical, nil
	}
	return "", fmt.Errorf("%w: sort mode %q (must be lexical or numeric)", ErrInvalidOption, s)
}

// lessHeatNo orders two heat numbers under the given mode.
func lessHeatNo(a, b string, mode SortMode) bool {
	if mode == SortNumeric {
		ai, aerr := strconv.ParseUint(a, 10, 64)
		bi, berr := strconv.ParseUint(b, 10, 64)
		switch {
		case aerr == nil && berr == nil:
			if ai != bi {
				return ai < bi
			}
		case aerr == nil:
			return false
		case berr == nil:
			return true
		}
	}
	return a < b
}
