package stats

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders d as a compact XhYmZs token. The hour component
// is omitted when zero and the minute component when hours and minutes
// are both zero; seconds always print, so the zero duration is "0s".
// Sub-second precision (which rolling means can introduce) is truncated.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)

	var sb strings.Builder
	hours := secs / 3600
	if hours > 0 {
		fmt.Fprintf(&sb, "%dh", hours)
	}
	secs -= hours * 3600
	minutes := secs / 60
	if minutes > 0 || hours > 0 {
		fmt.Fprintf(&sb, "%dm", minutes)
	}
	secs -= minutes * 60
	fmt.Fprintf(&sb, "%ds", secs)
	return sb.String()
}
