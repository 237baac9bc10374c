package stats

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)

	tests := []struct {
		name string
		t    time.Time
		want Date
	}{
		{"Midday", time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC), Date{2024, time.March, 5}},
		{"JustBeforeMidnight", time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC), Date{2024, time.March, 5}},
		{"Midnight", time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC), Date{2024, time.March, 6}},
		{"LocalZoneTakenAsIs", time.Date(2024, time.March, 6, 1, 0, 0, 0, loc), Date{2024, time.March, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateOf(tt.t); got != tt.want {
				t.Errorf("DateOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateCompareAndString(t *testing.T) {
	a := Date{2023, time.December, 31}
	b := Date{2024, time.January, 1}

	if a.Compare(b) >= 0 {
		t.Errorf("Compare(%s, %s) = %d, want negative", a, b, a.Compare(b))
	}
	if b.Compare(a) <= 0 {
		t.Errorf("Compare(%s, %s) = %d, want positive", b, a, b.Compare(a))
	}
	if a.Compare(a) != 0 {
		t.Errorf("Compare(%s, %s) = %d, want 0", a, a, a.Compare(a))
	}

	if got := b.String(); got != "2024-01-01" {
		t.Errorf("String() = %q, want %q", got, "2024-01-01")
	}
}
