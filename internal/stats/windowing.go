package stats

import "time"

// DefaultWindowDays is the rolling window length of the standard report.
const DefaultWindowDays = 7

// Rolling slides a window of n consecutive daily entries over days with
// stride 1 and returns one per-field mean per window, labeled with the
// window's last date. Entries must already be in ascending date order.
//
// The window covers n present entries, not n calendar dates: a day with
// no events has no entry and is skipped over, which shifts window
// composition around gap days. Fewer than n entries yields no windows.
//
// Count fields use integer division; volumes divide as floats and
// durations as durations. MaxSleep averages like any other field, so it
// reads as "mean of the daily maxima" rather than a window-wide maximum.
func Rolling(days []DailyEntry, n int) []WindowMean {
	if n <= 0 || len(days) < n {
		return nil
	}

	means := make([]WindowMean, 0, len(days)-n+1)
	for i := 0; i+n <= len(days); i++ {
		window := days[i : i+n]

		var total Sum
		for _, entry := range window {
			total.TotalDiapers += entry.Sum.TotalDiapers
			total.PooDiapers += entry.Sum.PooDiapers
			total.BottleOz += entry.Sum.BottleOz
			total.BottleSessions += entry.Sum.BottleSessions
			total.BreastDuration += entry.Sum.BreastDuration
			total.PumpingOz += entry.Sum.PumpingOz
			total.TummyTime += entry.Sum.TummyTime
			total.MaxSleep += entry.Sum.MaxSleep
			total.TotalSleep += entry.Sum.TotalSleep
		}

		means = append(means, WindowMean{
			Date: window[n-1].Date,
			Mean: Sum{
				TotalDiapers:   total.TotalDiapers / n,
				PooDiapers:     total.PooDiapers / n,
				BottleOz:       total.BottleOz / float64(n),
				BottleSessions: total.BottleSessions / n,
				BreastDuration: total.BreastDuration / time.Duration(n),
				PumpingOz:      total.PumpingOz / float64(n),
				TummyTime:      total.TummyTime / time.Duration(n),
				MaxSleep:       total.MaxSleep / time.Duration(n),
				TotalSleep:     total.TotalSleep / time.Duration(n),
			},
		})
	}
	return means
}
