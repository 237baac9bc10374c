package stats

import (
	"sort"
	"time"

	"babystats/internal/events"

	"github.com/rs/zerolog/log"
)

// bottleSessionGap is the cluster boundary for bottle feedings: a bottle
// at least this long after the previous same-day bottle starts a new
// session; anything closer is a top-up of the running one.
const bottleSessionGap = 60 * time.Minute

// Aggregator folds a chronologically sorted event stream into per-day
// Sums. It owns the one piece of cross-event state the fold needs, the
// time of the last bottle seen, so the whole fold is a pure function of
// the stream it is fed. Events must arrive in timestamp order; feeding it
// an unsorted stream miscounts bottle sessions.
type Aggregator struct {
	days       map[Date]*Sum
	prevBottle time.Time // zero until the first bottle
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{days: make(map[Date]*Sum)}
}

// day returns the Sum for d, creating it on first touch.
func (a *Aggregator) day(d Date) *Sum {
	s, ok := a.days[d]
	if !ok {
		s = &Sum{}
		a.days[d] = s
	}
	return s
}

// Observe applies one event to the running totals. Kinds outside the
// tracked set are ignored explicitly.
func (a *Aggregator) Observe(e events.Event) {
	switch e.Kind {
	case events.Diaper:
		s := a.day(DateOf(e.Time))
		s.TotalDiapers++
		if e.Poo {
			s.PooDiapers++
		}

	case events.Bottle:
		s := a.day(DateOf(e.Time))
		if a.newBottleSession(e.Time) {
			s.BottleSessions++
		}
		s.BottleOz += e.Ounces
		a.prevBottle = e.Time

	case events.LeftBreast, events.RightBreast:
		s := a.day(DateOf(e.Time))
		s.BreastDuration += e.Duration()

	case events.Pumping:
		s := a.day(DateOf(e.Start))
		s.PumpingOz += e.Ounces

	case events.TummyTime:
		s := a.day(DateOf(e.Start))
		s.TummyTime += e.Duration()

	case events.Sleep:
		// A sleep with no recorded end never reaches any aggregate.
		if e.End == nil {
			log.Debug().Time("start", e.Start).Msg("Skipping open-ended sleep session")
			return
		}
		s := a.day(DateOf(*e.End))
		d := e.Duration()
		if d > s.MaxSleep {
			s.MaxSleep = d
		}
		s.TotalSleep += d

	case events.Note:
		// annotations carry no totals

	default:
		log.Debug().Str("kind", string(e.Kind)).Msg("Ignoring unknown event kind")
	}
}

// newBottleSession reports whether a bottle at t opens a new session
// against the previous bottle. The first bottle ever, the first bottle of
// a calendar day, and any bottle an hour or more after the previous one
// all start sessions; closer same-day bottles merge into the running
// cluster.
func (a *Aggregator) newBottleSession(t time.Time) bool {
	if a.prevBottle.IsZero() {
		return true
	}
	if DateOf(a.prevBottle) != DateOf(t) {
		return true
	}
	return t.Sub(a.prevBottle) >= bottleSessionGap
}

// Days returns the accumulated daily entries in ascending date order.
// Map iteration order is arbitrary, and the windowing step depends on
// chronological entries, so the keys are sorted here.
func (a *Aggregator) Days() []DailyEntry {
	entries := make([]DailyEntry, 0, len(a.days))
	for d, s := range a.days {
		entries = append(entries, DailyEntry{Date: d, Sum: s})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Compare(entries[j].Date) < 0
	})
	return entries
}
