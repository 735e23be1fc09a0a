// Package heatchart turns LIMS chemistry reports into per-melt tables and
// per-element charts that highlight target heats.
package heatchart

import (
	"github.com/meltlab/heatchart-go/pkg/heatchart/output"
	"github.com/meltlab/heatchart-go/pkg/heatchart/parser"
	"github.com/meltlab/heatchart-go/pkg/heatchart/render"
	"github.com/meltlab/heatchart-go/pkg/heatchart/transform"
	"go.uber.org/zap"
)

// DefaultElements lists the elements charted when none are given.
var DefaultElements = []string{
	"Al", "B", "C", "Co", "Cr", "Cu", "Fe", "Mn", "Mo", "Nb", "Ni",
	"O", "P", "S", "Si", "Ta", "Te", "Ti", "V", "W", "Zr",
}

// Options configures a run.
type Options struct {
	// Label names the target column and prefixes output files.
	Label string
	// Columns names the report columns.
	Columns parser.ReportColumns
	// Sheet selects the worksheet of xlsx reports.
	Sheet string
	// Positions holds the beginning and end position labels.
	Positions transform.Positions
	// HeatNumberPolicy handles melt ids without a heat number.
	HeatNumberPolicy transform.HeatNumberPolicy
	// HeatNumberSentinel is used under transform.HeatNumberSentinel.
	HeatNumberSentinel string
	// SortMode orders rows by heat number.
	SortMode transform.SortMode
	// TableFormat is the persisted table format.
	TableFormat output.Format
	// SaveTable specifies whether to persist the labeled table.
	// If nil, defaults to false.
	SaveTable *bool
	// SaveCharts specifies whether to save charts as PNG files.
	// If nil, defaults to true; false hands charts to Display instead.
	SaveCharts *bool
	// DPI is the chart resolution. Zero means render.DefaultDPI.
	DPI float64
	// Display receives charts that are not saved.
	Display render.DisplayFunc
	// Logger receives pipeline logs. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		Label:            transform.DefaultLabel,
		Columns:          parser.DefaultReportColumns(),
		Positions:        transform.DefaultPositions(),
		HeatNumberPolicy: transform.HeatNumberFail,
		SortMode:         transform.SortLexical,
		TableFormat:      output.FormatCSV,
		DPI:              render.DefaultDPI,
	}
}

// ShouldSaveTable returns whether to persist the labeled table.
func (o Options) ShouldSaveTable() bool {
	if o.SaveTable != nil {
		return *o.SaveTable
	}
	return false
}

// ShouldSaveCharts returns whether to save charts to files.
func (o Options) ShouldSaveCharts() bool {
	if o.SaveCharts != nil {
		return *o.SaveCharts
	}
	return true
}

// label returns the configured label or the default.
func (o Options) label() string {
	if o.Label == "" {
		return transform.DefaultLabel
	}
	return o.Label
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) loadOptions() parser.LoadOptions {
	return parser.LoadOptions{Columns: o.Columns, Sheet: o.Sheet}
}

func (o Options) pivotOptions(elements []string) transform.PivotOptions {
	return transform.PivotOptions{
		Elements:         elements,
		Positions:        o.Positions,
		HeatNumberPolicy: o.HeatNumberPolicy,
		Sentinel:         o.HeatNumberSentinel,
		SortMode:         o.SortMode,
		Logger:           o.logger(),
	}
}

func (o Options) renderer() *render.Renderer {
	return &render.Renderer{DPI: o.DPI, Display: o.Display, Logger: o.logger()}
}
