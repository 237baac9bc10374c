// Package report renders rolling window means as the fixed-layout text
// blocks the report consumers parse. The layout is a compatibility
// contract; change it and downstream diffing breaks.
package report

import (
	"fmt"
	"io"

	"babystats/internal/stats"
)

// WriteWindow prints one report block for a single window mean.
func WriteWindow(w io.Writer, wm stats.WindowMean) error {
	m := wm.Mean

	perSession := "n/a"
	if m.BottleSessions > 0 {
		// Computed at render time; the average is not part of the Sum.
		perSession = fmt.Sprintf("%.1f", m.BottleOz/float64(m.BottleSessions))
	}

	_, err := fmt.Fprintf(w,
		"%s:\n"+
			"Total Diapers: %d\n"+
			"Poo Diapers: %d\n"+
			"Bottle: %.1f oz (%s oz per session)\n"+
			"Bottle Sessions: %d\n"+
			"Breast Feeding: %s\n"+
			"Pumping: %.1f oz\n"+
			"Tummy Time: %s\n"+
			"Max Sleep: %s\n"+
			"Total Sleep: %s\n",
		wm.Date,
		m.TotalDiapers,
		m.PooDiapers,
		m.BottleOz, perSession,
		m.BottleSessions,
		stats.FormatDuration(m.BreastDuration),
		m.PumpingOz,
		stats.FormatDuration(m.TummyTime),
		stats.FormatDuration(m.MaxSleep),
		stats.FormatDuration(m.TotalSleep),
	)
	return err
}

// Write prints every window block in order, separated by blank lines.
// An empty window list writes nothing and succeeds.
func Write(w io.Writer, means []stats.WindowMean) error {
	for i, wm := range means {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := WriteWindow(w, wm); err != nil {
			return err
		}
	}
	return nil
}
