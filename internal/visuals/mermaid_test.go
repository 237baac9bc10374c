package visuals

import (
	"strings"
	"testing"
	"time"

	"babystats/internal/stats"
)

func sample() []stats.WindowMean {
	return []stats.WindowMean{
		{
			Date: stats.Date{Year: 2024, Month: time.March, Day: 7},
			Mean: stats.Sum{BottleOz: 24.5, PumpingOz: 4, TotalSleep: 9 * time.Hour, MaxSleep: 3 * time.Hour},
		},
		{
			Date: stats.Date{Year: 2024, Month: time.March, Day: 8},
			Mean: stats.Sum{BottleOz: 26, PumpingOz: 3.5, TotalSleep: 10 * time.Hour, MaxSleep: 4 * time.Hour},
		},
	}
}

func TestGenerateFeedingChart(t *testing.T) {
	chart := GenerateFeedingChart(sample())

	for _, frag := range []string{
		"xychart-beta",
		`x-axis ["2024-03-07", "2024-03-08"]`,
		"line [24.5, 26.0]",
		"line [4.0, 3.5]",
		`y-axis "Ounces" 0 --> 32`,
	} {
		if !strings.Contains(chart, frag) {
			t.Errorf("GenerateFeedingChart() missing %q:\n%s", frag, chart)
		}
	}
}

func TestGenerateSleepChart(t *testing.T) {
	chart := GenerateSleepChart(sample())

	for _, frag := range []string{
		"line [9.0, 10.0]",
		"line [3.0, 4.0]",
		`y-axis "Hours" 0 --> 12`,
	} {
		if !strings.Contains(chart, frag) {
			t.Errorf("GenerateSleepChart() missing %q:\n%s", frag, chart)
		}
	}
}

func TestGenerateCharts_Empty(t *testing.T) {
	if got := GenerateFeedingChart(nil); got != "" {
		t.Errorf("GenerateFeedingChart(nil) = %q, want empty", got)
	}
	if got := GenerateSleepChart(nil); got != "" {
		t.Errorf("GenerateSleepChart(nil) = %q, want empty", got)
	}
}
