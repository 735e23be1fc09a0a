// Package transform reshapes composition reports into per-melt tables and
// labels target heats.
package transform

import "errors"

// ErrDuplicateEntry indicates a (melt, element, position) triple occurs more than once.
var ErrDuplicateEntry = errors.New("duplicate report entry")

// ErrNoHeatNumber indicates a melt id carries no heat number.
var ErrNoHeatNumber = errors.New("no heat number in melt id")

// ErrInvalidOption indicates an unknown option value.
var ErrInvalidOption = errors.New("invalid option")
