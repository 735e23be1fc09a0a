package render

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
	"github.com/meltlab/heatchart-go/pkg/heatchart/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// countDotColors counts the pixels of img that exactly match each dot color.
func countDotColors(img image.Image) map[string]int {
	counts := make(map[string]int)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a>>8 != 255 {
				continue
			}
			for name, c := range dotColors {
				if uint8(r>>8) == c.R && uint8(g>>8) == c.G && uint8(bl>>8) == c.B {
					counts[name]++
				}
			}
		}
	}
	return counts
}

func TestRenderPNG(t *testing.T) {
	c := BuildChart(labeledSample(), "Al", "140", transform.DefaultPositions(), nil)

	var buf bytes.Buffer
	r := &Renderer{}
	require.NoError(t, r.Render(c, &buf))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 960, cfg.Height)
}

func TestRenderSinglePoint(t *testing.T) {
	c := models.Chart{
		Element: "Al", AlloyCode: "140", Title: Title("Al", "140"),
		Series: []models.ChartSeries{{Name: "Beg", Position: "Beg", Color: ColorBlack, X: []float64{0}, Y: []float64{0}}},
	}

	var buf bytes.Buffer
	r := &Renderer{DPI: 100, WidthIn: 4, HeightIn: 3}
	require.NoError(t, r.Render(c, &buf))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}

func TestRenderEmptyChart(t *testing.T) {
	r := &Renderer{}
	err := r.Render(models.Chart{Element: "Al"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmptyChart)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	c := BuildChart(labeledSample(), "Al", "140", transform.DefaultPositions(), nil)

	r := &Renderer{}
	path, err := r.Save(c, dir, "RR")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "RR, 140, Al.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.DecodeConfig(f)
	assert.NoError(t, err)
}

func TestSaveEmptyChartSkipped(t *testing.T) {
	dir := t.TempDir()
	r := &Renderer{}

	path, err := r.Save(models.Chart{Element: "Zr", AlloyCode: "140"}, dir, "RR")
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveMissingDir(t *testing.T) {
	c := BuildChart(labeledSample(), "Al", "140", transform.DefaultPositions(), nil)
	r := &Renderer{}
	_, err := r.Save(c, filepath.Join(t.TempDir(), "missing"), "RR")
	assert.Error(t, err)
}

func TestShowUsesDisplayHook(t *testing.T) {
	c := BuildChart(labeledSample(), "Al", "140", transform.DefaultPositions(), nil)

	var shown []string
	r := &Renderer{Display: func(c models.Chart, data []byte) error {
		shown = append(shown, c.Element)
		_, err := png.DecodeConfig(bytes.NewReader(data))
		return err
	}}

	require.NoError(t, r.Show(c))
	assert.Equal(t, []string{"Al"}, shown)

	require.NoError(t, r.Show(models.Chart{Element: "Zr"}))
	assert.Equal(t, []string{"Al"}, shown)
}

func TestPadRange(t *testing.T) {
	tests := []struct {
		lo, hi   float64
		min, max float64
	}{
		{0, 10, -0.5, 10.5},
		{2, 2, 1.9, 2.1},
		{0, 0, -1, 1},
	}

	for _, tt := range tests {
		r := padRange(tt.lo, tt.hi)
		assert.InDelta(t, tt.min, r.Min, 1e-9)
		assert.InDelta(t, tt.max, r.Max, 1e-9)
	}
}

func TestRenderDrawsEveryLayer(t *testing.T) {
	c := BuildChart(labeledSample(), "Al", "140", transform.DefaultPositions(), nil)

	var buf bytes.Buffer
	r := &Renderer{}
	require.NoError(t, r.Render(c, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	counts := countDotColors(img)
	for _, color := range []string{ColorBlack, ColorBlue, ColorGray, ColorRed} {
		assert.Positive(t, counts[color], "no %s pixels in %v", color, counts)
	}
}

func TestRenderTopLeftPointVisible(t *testing.T) {
	// A single red point at the smallest x and largest y sits in the top-left corner of the plot.
	c := models.Chart{
		Element: "Al", AlloyCode: "140", Title: Title("Al", "140"),
		Series: []models.ChartSeries{
			{Name: "Beg", Position: "Beg", Color: ColorBlack, X: []float64{1, 2}, Y: []float64{0.5, 0.6}},
			{Name: "End (target)", Position: "End", Target: true, Color: ColorRed, X: []float64{0}, Y: []float64{2.0}},
		},
	}

	var buf bytes.Buffer
	r := &Renderer{}
	require.NoError(t, r.Render(c, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Positive(t, countDotColors(img)[ColorRed])
}

func TestShowDefaultDisplayKeepsFile(t *testing.T) {
	dir := t.TempDir()
	core, logs := observer.New(zap.InfoLevel)
	r := &Renderer{TempDir: dir, Logger: zap.New(core)}

	c := BuildChart(labeledSample(), "Al", "140", transform.DefaultPositions(), nil)
	require.NoError(t, r.Show(c))

	matches, err := filepath.Glob(filepath.Join(dir, "heatchart-*.png"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	entries := logs.FilterMessage("Chart ready").All()
	require.Len(t, entries, 1)
	assert.Equal(t, matches[0], entries[0].ContextMap()["path"])
}
