package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"babystats/internal/stats"
)

func TestWriteWindow(t *testing.T) {
	wm := stats.WindowMean{
		Date: stats.Date{Year: 2024, Month: time.March, Day: 7},
		Mean: stats.Sum{
			TotalDiapers:   8,
			PooDiapers:     3,
			BottleOz:       24.5,
			BottleSessions: 7,
			BreastDuration: 90 * time.Minute,
			PumpingOz:      4,
			TummyTime:      25 * time.Minute,
			MaxSleep:       3 * time.Hour,
			TotalSleep:     9 * time.Hour,
		},
	}

	var buf bytes.Buffer
	if err := WriteWindow(&buf, wm); err != nil {
		t.Fatalf("WriteWindow() error = %v", err)
	}

	want := `2024-03-07:
Total Diapers: 8
Poo Diapers: 3
Bottle: 24.5 oz (3.5 oz per session)
Bottle Sessions: 7
Breast Feeding: 1h30m0s
Pumping: 4.0 oz
Tummy Time: 25m0s
Max Sleep: 3h0m0s
Total Sleep: 9h0m0s
`
	if got := buf.String(); got != want {
		t.Errorf("WriteWindow() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteWindow_ZeroBottleSessions(t *testing.T) {
	wm := stats.WindowMean{
		Date: stats.Date{Year: 2024, Month: time.March, Day: 7},
		Mean: stats.Sum{BottleOz: 1.2},
	}

	var buf bytes.Buffer
	if err := WriteWindow(&buf, wm); err != nil {
		t.Fatalf("WriteWindow() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Bottle: 1.2 oz (n/a oz per session)") {
		t.Errorf("WriteWindow() =\n%s\nwant n/a per-session average", buf.String())
	}
}

func TestWrite_SeparatesBlocks(t *testing.T) {
	means := []stats.WindowMean{
		{Date: stats.Date{Year: 2024, Month: time.March, Day: 7}},
		{Date: stats.Date{Year: 2024, Month: time.March, Day: 8}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, means); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Total Sleep: 0s\n\n2024-03-08:") {
		t.Errorf("Write() blocks not separated by a blank line:\n%s", out)
	}
	if strings.Index(out, "2024-03-07:") > strings.Index(out, "2024-03-08:") {
		t.Errorf("Write() emitted windows out of order:\n%s", out)
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write(nil) wrote %q, want nothing", buf.String())
	}
}
