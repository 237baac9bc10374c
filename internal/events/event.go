package events

import (
	"fmt"
	"sort"
	"time"
)

// Kind identifies the care activity an event records.
type Kind string

const (
	// Diaper is a diaper change.
	Diaper Kind = "diaper"
	// Bottle is a bottle feeding.
	Bottle Kind = "bottle"
	// LeftBreast is a nursing session on the left side.
	LeftBreast Kind = "left_breast"
	// RightBreast is a nursing session on the right side.
	RightBreast Kind = "right_breast"
	// Pumping is a pumping session with its yielded volume.
	Pumping Kind = "pumping"
	// TummyTime is a supervised tummy-time session.
	TummyTime Kind = "tummy_time"
	// Sleep is a sleep session; End may be absent while the baby is still down.
	Sleep Kind = "sleep"
	// Note is a free-text annotation. Carried through the log, ignored by stats.
	Note Kind = "note"
)

// Event is a single record in the care log. It is a flat tagged struct:
// Kind selects which of the variant fields are meaningful.
type Event struct {
	// Kind is the activity tag.
	Kind Kind `json:"kind"`

	// Time is the event moment for point-like kinds (diaper, bottle,
	// left_breast, right_breast, note).
	Time time.Time `json:"time,omitzero"`
	// Start is the session start for span-like kinds (pumping, tummy_time, sleep).
	Start time.Time `json:"start,omitzero"`
	// End is the session end for sleep. Nil while still in progress.
	End *time.Time `json:"end,omitempty"`

	// Poo marks a diaper change as containing stool.
	Poo bool `json:"poo,omitempty"`
	// Ounces is the fed volume for bottle, or the derived yield for pumping.
	Ounces float64 `json:"ounces,omitempty"`
	// DurationSeconds is the session length for nursing, tummy_time and sleep.
	DurationSeconds int64 `json:"durationSeconds,omitempty"`
	// Text is the note body.
	Text string `json:"text,omitempty"`
}

// Timestamp returns the event's single logical timestamp, used for
// chronological ordering: Time for point kinds, Start for span kinds.
// An event without one is unusable and reported as an error.
func (e Event) Timestamp() (time.Time, error) {
	switch e.Kind {
	case Pumping, TummyTime, Sleep:
		if e.Start.IsZero() {
			return time.Time{}, fmt.Errorf("%s event has no start time", e.Kind)
		}
		return e.Start, nil
	default:
		if e.Time.IsZero() {
			return time.Time{}, fmt.Errorf("%s event has no time", e.Kind)
		}
		return e.Time, nil
	}
}

// BucketTime returns the timestamp that selects the calendar day an event
// is summed under. It differs from Timestamp for sleep, which is credited
// to the day it ended; a sleep with no recorded end has no bucket and the
// second return is false.
func (e Event) BucketTime() (time.Time, bool) {
	if e.Kind == Sleep {
		if e.End == nil {
			return time.Time{}, false
		}
		return *e.End, true
	}
	ts, err := e.Timestamp()
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// Duration returns the recorded session length.
func (e Event) Duration() time.Duration {
	return time.Duration(e.DurationSeconds) * time.Second
}

// Sort orders events chronologically by Timestamp, ascending. The sort is
// stable: same-instant events keep their input order, which the bottle
// session heuristic depends on. Every timestamp is validated before any
// reordering happens, so a bad record can never leave the slice partially
// sorted.
func Sort(evs []Event) error {
	for i, e := range evs {
		if _, err := e.Timestamp(); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	sort.SliceStable(evs, func(i, j int) bool {
		ti, _ := evs[i].Timestamp()
		tj, _ := evs[j].Timestamp()
		return ti.Before(tj)
	})
	return nil
}
