package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
)

// ErrEmptyChart indicates a chart without any series points.
var ErrEmptyChart = errors.New("chart has no points")

// colorGray matches the gray of the end/non-target layer.
var colorGray = drawing.Color{R: 128, G: 128, B: 128, A: 255}

var dotColors = map[string]drawing.Color{
	ColorBlack: drawing.ColorBlack,
	ColorBlue:  drawing.ColorBlue,
	ColorGray:  colorGray,
	ColorRed:   drawing.ColorRed,
}

// DisplayFunc receives the PNG of a chart that is shown rather than saved.
type DisplayFunc func(c models.Chart, png []byte) error

// Renderer draws charts to PNG.
type Renderer struct {
	// DPI is the output resolution. Zero means DefaultDPI.
	DPI float64
	// WidthIn and HeightIn are the figure size in inches. Zero means the defaults.
	WidthIn  float64
	HeightIn float64
	// Display handles charts in show mode. Nil writes them to a file in TempDir.
	Display DisplayFunc
	// TempDir receives the files of the default Display. Empty means os.TempDir().
	// The files are left in place for the viewer.
	TempDir string
	// Logger receives render warnings. Nil disables logging.
	Logger *zap.Logger
}

func (r *Renderer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Renderer) dpi() float64 {
	if r.DPI <= 0 {
		return DefaultDPI
	}
	return r.DPI
}

func (r *Renderer) size() (int, int) {
	w, h := r.WidthIn, r.HeightIn
	if w <= 0 {
		w = DefaultWidthIn
	}
	if h <= 0 {
		h = DefaultHeightIn
	}
	return InchesToPixels(w, r.dpi()), InchesToPixels(h, r.dpi())
}

// Render draws c as PNG to w.
func (r *Renderer) Render(c models.Chart, w io.Writer) error {
	if c.Points() == 0 {
		return ErrEmptyChart
	}

	var series []chart.Series
	for _, s := range c.Series {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style:   pointStyle(dotColors[s.Color]),
		})
	}

	xr, yr := dataRanges(c)
	width, height := r.size()
	ch := chart.Chart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		DPI:    r.dpi(),
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding:   chart.Box{Top: 80, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  chart.XAxis{Name: "heat", Range: xr},
		YAxis:  chart.YAxis{Name: "Conc %", Range: yr},
		Series: series,
	}
	return ch.Render(chart.PNG, w)
}

// Save renders c into dir as FileName(label, ...) and returns the written path.
// A chart without points is logged and skipped.
func (r *Renderer) Save(c models.Chart, dir, label string) (string, error) {
	png, err := r.encode(c)
	if err != nil || png == nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(label, c.AlloyCode, c.Element))
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	return path, nil
}

// Show renders c and hands it to the Display hook.
// A chart without points is logged and skipped.
func (r *Renderer) Show(c models.Chart) error {
	png, err := r.encode(c)
	if err != nil || png == nil {
		return err
	}

	display := r.Display
	if display == nil {
		display = r.displayTemp
	}
	return display(c, png)
}

// encode renders c into memory. It returns nil bytes for an empty chart.
func (r *Renderer) encode(c models.Chart) ([]byte, error) {
	if c.Points() == 0 {
		r.logger().Warn("Nothing to plot; chart skipped",
			zap.String("alloy_code", c.AlloyCode),
			zap.String("element", c.Element))
		return nil, nil
	}

	var buf bytes.Buffer
	if err := r.Render(c, &buf); err != nil {
		return nil, fmt.Errorf("render chart %s: %w", c.Element, err)
	}
	return buf.Bytes(), nil
}

// displayTemp writes the chart to a file in TempDir and logs its location.
func (r *Renderer) displayTemp(c models.Chart, png []byte) error {
	f, err := os.CreateTemp(r.TempDir, "heatchart-*.png")
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(png); err != nil {
		return err
	}
	r.logger().Info("Chart ready",
		zap.String("alloy_code", c.AlloyCode),
		zap.String("element", c.Element),
		zap.String("path", f.Name()))
	return nil
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// dataRanges returns padded axis ranges covering every point of c.
// Single points and constant series still get a non-empty range.
func dataRanges(c models.Chart) (*chart.ContinuousRange, *chart.ContinuousRange) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for i := range s.Y {
			minX, maxX = math.Min(minX, s.X[i]), math.Max(maxX, s.X[i])
			minY, maxY = math.Min(minY, s.Y[i]), math.Max(maxY, s.Y[i])
		}
	}
	return padRange(minX, maxX), padRange(minY, maxY)
}

func padRange(lo, hi float64) *chart.ContinuousRange {
	span := hi - lo
	pad := span * 0.05
	if span == 0 {
		pad = math.Abs(lo) * 0.05
		if pad == 0 {
			pad = 1
		}
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}
