// Package chart renders an annotated spectrum with gonum/plot.
//
// The layout follows the usual lab-notebook figure: a red intensity trace
// over a fixed wavelength axis, a closed frame, bold serif axis text, no
// intensity ticks, and one annotation per located peak. Markers produced by
// the half-maximum method are drawn as dashed vertical lines spanning the
// plot with the position printed near the top edge; markers produced by the
// maximum method are drawn as a dot at the peak with the position printed
// beside it.
//
//	p, err := chart.Render(s, markers, chart.DefaultStyle())
//	if err != nil {
//	    return err
//	}
//	err = chart.Save(p, "spectrum.png", chart.DefaultStyle())
package chart
