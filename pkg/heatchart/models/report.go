// Package models defines data structures for LIMS chemistry reports and the
// tables and charts derived from them.
package models

// Measurement represents a single row of a composition report.
type Measurement struct {
	// AlloyCode is the alloy-code identifier of the row.
	AlloyCode string `json:"alloy_code"`
	// MeltID is the melt (heat) identifier, e.g. "140B62873".
	MeltID string `json:"melt_id"`
	// Element is the element code, e.g. "Al".
	Element string `json:"element"`
	// Position is the measurement position label, e.g. "Beg" or "End".
	Position string `json:"position"`
	// Conc is the concentration in percent (nil if the cell was empty or not numeric).
	Conc *float64 `json:"conc,omitempty"`
}

// Report represents a loaded composition report.
type Report struct {
	// Source is the file name the report was read from (no path).
	Source string `json:"source"`
	// Measurements contains one entry per data row, in file order.
	Measurements []Measurement `json:"measurements"`
}

// AlloyCode returns the alloy code of the first row, or "" for an empty report.
func (r *Report) AlloyCode() string {
	if r == nil || len(r.Measurements) == 0 {
		return ""
	}
	return r.Measurements[0].AlloyCode
}
