// Package render builds and draws per-element scatter charts of labeled tables.
package render

import (
	"fmt"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
	"github.com/meltlab/heatchart-go/pkg/heatchart/transform"
	"go.uber.org/zap"
)

// Series colors.
const (
	ColorBlack = "black"
	ColorBlue  = "blue"
	ColorGray  = "gray"
	ColorRed   = "red"
)

// layer describes one of the four possible scatter layers.
type layer struct {
	beginning bool
	target    bool
	color     string
}

// layers lists the scatter layers in drawing order.
var layers = []layer{
	{beginning: true, target: false, color: ColorBlack},
	{beginning: true, target: true, color: ColorBlue},
	{beginning: false, target: false, color: ColorGray},
	{beginning: false, target: true, color: ColorRed},
}

// Title returns the chart title for an element and alloy code.
func Title(element, alloyCode string) string {
	return fmt.Sprintf("%s, %s. Black|Blue = beg, Gray|Red = end", element, alloyCode)
}

// FileName returns the conventional chart file name "{label}, {alloy_code}, {element}.png".
func FileName(label, alloyCode, element string) string {
	return fmt.Sprintf("%s, %s, %s.png", label, alloyCode, element)
}

// BuildChart collects the scatter series of one element.
// A position whose column is absent from the table is logged and omitted.
// Rows without a value at a position are skipped, and empty series are dropped.
func BuildChart(t *models.LabeledTable, element, alloyCode string, positions transform.Positions, logger *zap.Logger) models.Chart {
	if logger == nil {
		logger = zap.NewNop()
	}
	if positions.Beginning == "" || positions.End == "" {
		positions = transform.DefaultPositions()
	}

	c := models.Chart{
		Element:   element,
		AlloyCode: alloyCode,
		Title:     Title(element, alloyCode),
	}

	for _, pos := range []string{positions.Beginning, positions.End} {
		key := models.ColumnKey{Element: element, Position: pos}
		if !t.HasColumn(key) {
			logger.Warn("No measurements at position; series omitted",
				zap.String("alloy_code", alloyCode),
				zap.String("element", element),
				zap.String("position", pos))
			c.Omitted = append(c.Omitted, pos)
		}
	}

	for _, l := range layers {
		pos := positions.End
		if l.beginning {
			pos = positions.Beginning
		}
		key := models.ColumnKey{Element: element, Position: pos}
		if !t.HasColumn(key) {
			continue
		}

		s := models.ChartSeries{
			Name:     seriesName(pos, l.target),
			Position: pos,
			Target:   l.target,
			Color:    l.color,
		}
		for _, r := range t.Rows {
			if (r.Label == 1) != l.target {
				continue
			}
			v, ok := r.Value(key)
			if !ok {
				continue
			}
			s.X = append(s.X, float64(r.Index))
			s.Y = append(s.Y, v)
		}
		if s.Len() > 0 {
			c.Series = append(c.Series, s)
		}
	}

	return c
}

func seriesName(position string, target bool) string {
	if target {
		return position + " (target)"
	}
	return position
}
