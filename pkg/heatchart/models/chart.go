package models

// ChartSeries represents one scatter layer of a chart.
type ChartSeries struct {
	// Name is the series display name, e.g. "Beg (target)".
	Name string `json:"name"`
	// Position is the measurement position the series plots.
	Position string `json:"position"`
	// Target is true when the series holds target melts.
	Target bool `json:"target"`
	// Color is the dot color name (black, blue, gray, red).
	Color string `json:"color"`
	// X holds the row indexes of the plotted melts.
	X []float64 `json:"x"`
	// Y holds the concentrations, parallel to X.
	Y []float64 `json:"y"`
}

// Len returns the number of points in the series.
func (s ChartSeries) Len() int {
	return len(s.Y)
}

// Chart represents a per-element scatter chart before rendering.
type Chart struct {
	// Element is the plotted element code.
	Element string `json:"element"`
	// AlloyCode is the alloy code used in the title.
	AlloyCode string `json:"alloy_code"`
	// Title is the chart title.
	Title string `json:"title"`
	// Series is the list of non-empty series, in drawing order.
	Series []ChartSeries `json:"series"`
	// Omitted lists positions whose column was absent from the table.
	Omitted []string `json:"omitted,omitempty"`
}

// Points returns the total number of points across all series.
func (c Chart) Points() int {
	n := 0
	for _, s := range c.Series {
		n += s.Len()
	}
	return n
}
