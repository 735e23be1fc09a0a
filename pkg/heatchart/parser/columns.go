package parser

import "errors"

// ErrFileNotFound indicates the report file does not exist.
var ErrFileNotFound = errors.New("report file not found")

// ErrMissingColumn indicates the report header lacks a required column.
var ErrMissingColumn = errors.New("required column missing")

// ReportColumns names the external columns of a composition report.
type ReportColumns struct {
	AlloyCode string
	MeltID    string
	Element   string
	Position  string
	Conc      string
}

// DefaultReportColumns returns the column names of the LIMS 205 chemistry export.
func DefaultReportColumns() ReportColumns {
	return ReportColumns{
		AlloyCode: "U Alloy Codeid",
		MeltID:    "Melt Id",
		Element:   "Paramid",
		Position:  "Location Id",
		Conc:      "Conc %",
	}
}

// names returns the required column names in a fixed order.
func (c ReportColumns) names() []string {
	return []string{c.AlloyCode, c.MeltID, c.Element, c.Position, c.Conc}
}

// withDefaults fills empty names from DefaultReportColumns.
func (c ReportColumns) withDefaults() ReportColumns {
	d := DefaultReportColumns()
	if c.AlloyCode == "" {
		c.AlloyCode = d.AlloyCode
	}
	if c.MeltID == "" {
		c.MeltID = d.MeltID
	}
	if c.Element == "" {
		c.Element = d.Element
	}
	if c.Position == "" {
		c.Position = d.Position
	}
	if c.Conc == "" {
		c.Conc = d.Conc
	}
	return c
}
