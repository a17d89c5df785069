package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/chawaici/Programs-for-Data-Analysis/measure/peak"
	"github.com/chawaici/Programs-for-Data-Analysis/stats/spectral"
	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.Bold)
	valueColor  = color.New(color.FgBlue)
	warnColor   = color.New(color.FgYellow)
)

// printReport writes a summary line for the spectrum and one row per target.
func printReport(w io.Writer, st spectral.Stats, markers []peak.Marker, missing []peak.Target) error {
	if _, err := fmt.Fprintf(w, "%d samples, %.1f-%.1f nm, max %.4g at %.1f nm, centroid %.1f nm\n\n",
		st.Count, st.XMin, st.XMax, st.Max, st.MaxX, st.Centroid); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, headerColor.Sprint("Target\tMethod\tPosition\tPeak [nm]\tHalf height\tFWHM [nm]")); err != nil {
		return err
	}

	for _, m := range markers {
		half, width := "-", "-"
		if m.HalfMax != nil {
			half = fmt.Sprintf("%.4g", m.HalfMax.HalfHeight)
			width = fmt.Sprintf("%.2f", m.HalfMax.Width())
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\t%s\n",
			m.Target.Name,
			m.Method,
			valueColor.Sprint(m.Label()),
			m.Peak.X,
			half,
			width,
		); err != nil {
			return err
		}
	}
	for _, t := range missing {
		if _, err := fmt.Fprintf(tw, "%s\t-\t%s\t-\t-\t-\n", t.Name, warnColor.Sprint("not found")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
