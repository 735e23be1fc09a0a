package heatchart

import (
	"fmt"

	"github.com/meltlab/heatchart-go/pkg/heatchart/parser"
	"github.com/meltlab/heatchart-go/pkg/heatchart/transform"
)

// ErrFileNotFound indicates the report file does not exist.
var ErrFileNotFound = parser.ErrFileNotFound

// ErrMissingColumn indicates the report lacks a required column.
var ErrMissingColumn = parser.ErrMissingColumn

// ErrDuplicateEntry indicates a (melt, element, position) triple occurs twice.
var ErrDuplicateEntry = transform.ErrDuplicateEntry

// ErrNoHeatNumber indicates a melt id carries no heat number.
var ErrNoHeatNumber = transform.ErrNoHeatNumber

// ErrInvalidOption indicates an unknown option value.
var ErrInvalidOption = transform.ErrInvalidOption

// Pipeline stages that can fail a run.
const (
	StageLoad  = "load"
	StagePivot = "pivot"
)

// StageError represents a fatal error in one pipeline stage.
type StageError struct {
	AlloyCode string
	Element   string
	Stage     string // "load", "pivot"
	Err       error
}

func (e *StageError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("%s failed for alloy %q: %v", e.Stage, e.AlloyCode, e.Err)
	}
	return fmt.Sprintf("%s failed for alloy %q element %q: %v", e.Stage, e.AlloyCode, e.Element, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(alloyCode, element, stage string, err error) *StageError {
	return &StageError{
		AlloyCode: alloyCode,
		Element:   element,
		Stage:     stage,
		Err:       err,
	}
}
