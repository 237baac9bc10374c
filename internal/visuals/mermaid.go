package visuals

import (
	"fmt"
	"math"
	"strings"

	"babystats/internal/stats"
)

// GenerateFeedingChart creates a Mermaid xychart-beta of the rolling
// feeding volumes: one line for mean bottle ounces, one for mean pumping
// ounces, labeled by window date.
func GenerateFeedingChart(means []stats.WindowMean) string {
	if len(means) == 0 {
		return ""
	}

	var labels []string
	var bottle []string
	var pumping []string

	maxY := 0.0
	for _, wm := range means {
		labels = append(labels, fmt.Sprintf("\"%s\"", wm.Date))
		bottle = append(bottle, fmt.Sprintf("%.1f", wm.Mean.BottleOz))
		pumping = append(pumping, fmt.Sprintf("%.1f", wm.Mean.PumpingOz))
		if wm.Mean.BottleOz > maxY {
			maxY = wm.Mean.BottleOz
		}
		if wm.Mean.PumpingOz > maxY {
			maxY = wm.Mean.PumpingOz
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Feeding Volume (7-day rolling mean)\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))

	// Scale the Y-axis with headroom above the tallest line
	sb.WriteString(fmt.Sprintf("    y-axis \"Ounces\" 0 --> %d\n", yCeiling(maxY)))

	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(bottle, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(pumping, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateSleepChart creates a Mermaid xychart-beta of the rolling sleep
// totals in hours: one line for mean total sleep, one for the mean of the
// daily maxima.
func GenerateSleepChart(means []stats.WindowMean) string {
	if len(means) == 0 {
		return ""
	}

	var labels []string
	var total []string
	var longest []string

	maxY := 0.0
	for _, wm := range means {
		labels = append(labels, fmt.Sprintf("\"%s\"", wm.Date))
		totalHours := wm.Mean.TotalSleep.Hours()
		maxHours := wm.Mean.MaxSleep.Hours()
		total = append(total, fmt.Sprintf("%.1f", totalHours))
		longest = append(longest, fmt.Sprintf("%.1f", maxHours))
		if totalHours > maxY {
			maxY = totalHours
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Sleep (7-day rolling mean)\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Hours\" 0 --> %d\n", yCeiling(maxY)))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(total, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(longest, ", ")))
	sb.WriteString("```")
	return sb.String()
}

func yCeiling(maxVal float64) int {
	if maxVal <= 0 {
		return 1
	}
	return int(math.Ceil(maxVal * 1.2))
}
