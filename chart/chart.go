package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/chawaici/Programs-for-Data-Analysis/dsp/series"
	"github.com/chawaici/Programs-for-Data-Analysis/measure/peak"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// yMargin is the fraction of the intensity range added above and below the
// data.
const yMargin = 0.05

// Render builds the annotated figure for s. Markers are drawn in order; the
// intensity limits are taken from s alone so that markers never rescale the
// plot.
func Render(s series.Series, markers []peak.Marker, st Style) (*plot.Plot, error) {
	series.MustMatch(s.X, s.Y)

	p := plot.New()
	setupAxes(p, st)

	xys := make(plotter.XYs, s.Len())
	for i := range xys {
		xys[i].X = s.X[i]
		xys[i].Y = s.Y[i]
	}
	trace, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("chart: trace: %w", err)
	}
	trace.Color = st.TraceColor
	trace.Width = st.TraceWidth
	p.Add(trace)

	ymin, ymax := yLimits(s)

	for _, m := range markers {
		var ps []plot.Plotter
		switch m.Method {
		case peak.MethodMaximum:
			ps, err = dotMarker(m, st)
		default:
			ps, err = lineMarker(m, ymin, ymax, st)
		}
		if err != nil {
			return nil, fmt.Errorf("chart: marker %q: %w", m.Target.Name, err)
		}
		p.Add(ps...)
	}

	p.Add(frame{style: p.X.LineStyle})

	// Plotters widen the axes as they are added; the fixed limits win.
	p.X.Min, p.X.Max = st.XMin, st.XMax
	p.Y.Min, p.Y.Max = ymin, ymax
	return p, nil
}

// Save writes p to path. The image format follows the file extension.
func Save(p *plot.Plot, path string, st Style) error {
	if err := CheckFormat(path); err != nil {
		return err
	}
	if err := p.Save(st.Width, st.Height, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return nil
}

func setupAxes(p *plot.Plot, st Style) {
	p.X.Label.Text = st.XLabel
	p.X.Label.TextStyle.Font = st.font(st.AxisFont, true)
	p.X.Tick.Label.Font = st.font(st.TickFont, true)
	p.X.Tick.Marker = plot.ConstantTicks(xTicks(st.XMin, st.XMax, st.XTickStep))
	p.X.Padding = 0

	p.Y.Label.Text = st.YLabel
	p.Y.Label.TextStyle.Font = st.font(st.AxisFont, true)
	p.Y.Tick.Marker = plot.ConstantTicks(nil)
	p.Y.Tick.Length = 0
	p.Y.Padding = 0
}

// xTicks returns labelled major ticks from lo to hi inclusive.
func xTicks(lo, hi, step float64) []plot.Tick {
	if !(step > 0) || hi < lo {
		return nil
	}
	var ticks []plot.Tick
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}

// yLimits returns the data range widened by yMargin on both sides.
func yLimits(s series.Series) (lo, hi float64) {
	lo, hi, ok := s.Range()
	if !ok {
		return 0, 1
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	return lo - yMargin*span, hi + yMargin*span
}

func lineMarker(m peak.Marker, ymin, ymax float64, st Style) ([]plot.Plotter, error) {
	ln, err := plotter.NewLine(plotter.XYs{{X: m.X, Y: ymin}, {X: m.X, Y: ymax}})
	if err != nil {
		return nil, err
	}
	ln.Color = st.LineColor
	ln.Width = st.LineWidth
	ln.Dashes = st.LineDashes

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: m.X + st.LineOffset, Y: ymax - 0.02*(ymax-ymin)}},
		Labels: []string{m.Label()},
	})
	if err != nil {
		return nil, err
	}
	styleLabels(lbl, st, st.LineFont, st.LineColor, text.XLeft, text.YTop)

	return []plot.Plotter{ln, lbl}, nil
}

func dotMarker(m peak.Marker, st Style) ([]plot.Plotter, error) {
	pt := plotter.XYs{{X: m.X, Y: m.Y}}

	dot, err := plotter.NewScatter(pt)
	if err != nil {
		return nil, err
	}
	dot.GlyphStyle.Color = st.DotColor
	dot.GlyphStyle.Radius = st.DotRadius
	dot.GlyphStyle.Shape = draw.CircleGlyph{}

	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: pt, Labels: []string{m.Label()}})
	if err != nil {
		return nil, err
	}
	styleLabels(lbl, st, st.DotFont, st.DotColor, text.XLeft, text.YBottom)

	return []plot.Plotter{dot, lbl}, nil
}

func styleLabels(l *plotter.Labels, st Style, size vg.Length, c color.Color, xa text.XAlignment, ya text.YAlignment) {
	for i := range l.TextStyle {
		l.TextStyle[i].Font = st.font(size, false)
		l.TextStyle[i].Color = c
		l.TextStyle[i].XAlign = xa
		l.TextStyle[i].YAlign = ya
	}
}

// frame draws the top and right edges of the data area so that, together
// with the axis lines, the plot is fully boxed.
type frame struct {
	style draw.LineStyle
}

func (f frame) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	x0, x1 := trX(p.X.Min), trX(p.X.Max)
	y0, y1 := trY(p.Y.Min), trY(p.Y.Max)
	c.StrokeLines(f.style, []vg.Point{{X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}})
}
