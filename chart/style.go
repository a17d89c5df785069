package chart

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// Style controls the figure layout.
type Style struct {
	// Wavelength axis limits and major tick spacing.
	XMin, XMax float64
	XTickStep  float64

	XLabel, YLabel string

	Width, Height vg.Length

	TraceColor color.Color
	TraceWidth vg.Length

	// Half-maximum markers.
	LineColor  color.Color
	LineWidth  vg.Length
	LineDashes []vg.Length
	LineOffset float64 // label distance to the right of the line, in X units
	LineFont   vg.Length

	// Maximum markers.
	DotColor  color.Color
	DotRadius vg.Length
	DotFont   vg.Length

	AxisFont vg.Length
	TickFont vg.Length

	Typeface font.Typeface
	Variant  font.Variant
}

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
	navy = color.RGBA{B: 0x80, A: 0xff}
)

// DefaultStyle returns a 300-1000 nm figure with bold Liberation Serif text.
func DefaultStyle() Style {
	return Style{
		XMin:      300,
		XMax:      1000,
		XTickStep: 100,

		XLabel: "Wavelength(nm)",
		YLabel: "Intensity",

		Width:  6.4 * vg.Inch,
		Height: 4.8 * vg.Inch,

		TraceColor: red,
		TraceWidth: vg.Points(1.5),

		LineColor:  blue,
		LineWidth:  vg.Points(1.2),
		LineDashes: []vg.Length{vg.Points(4.4), vg.Points(1.9)},
		LineOffset: 5,
		LineFont:   vg.Points(11),

		DotColor:  navy,
		DotRadius: vg.Points(2.5),
		DotFont:   vg.Points(8),

		AxisFont: vg.Points(18),
		TickFont: vg.Points(14),

		Typeface: "Liberation",
		Variant:  "Serif",
	}
}

func (st Style) font(size vg.Length, bold bool) font.Font {
	f := font.Font{
		Typeface: st.Typeface,
		Variant:  st.Variant,
		Size:     size,
	}
	if bold {
		f.Weight = xfont.WeightBold
	}
	return f
}
