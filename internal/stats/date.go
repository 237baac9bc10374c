package stats

import "time"

// Date is a calendar day, comparable and usable as a map key. The wall
// clock and location are deliberately dropped: two timestamps bucket to
// the same Date iff they print the same "2006-01-02".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day t falls on, in t's own location. No
// timezone reconciliation happens here; the timestamp's encoded zone is
// taken at face value.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Compare orders dates chronologically: negative when d is before o,
// zero when equal, positive when after.
func (d Date) Compare(o Date) int {
	if d.Year != o.Year {
		return d.Year - o.Year
	}
	if d.Month != o.Month {
		return int(d.Month) - int(o.Month)
	}
	return d.Day - o.Day
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
