package render

// DefaultDPI is the resolution charts are saved at.
const DefaultDPI = 200

// Default figure size in inches.
const (
	DefaultWidthIn  = 6.4
	DefaultHeightIn = 4.8
)

// InchesToPixels converts a length in inches to pixels at the given DPI.
// A 6.4 inch figure at 200 DPI is 1280 pixels wide.
func InchesToPixels(inches, dpi float64) int {
	return int(inches*dpi + 0.5)
}
