package plan

import "sort"

const (
	dayT14 = "T-14"
	dayT7  = "T-7"
	dayT3  = "T-3"
	dayT1  = "T-1"
	dayOf  = "Day of"
)

// canonicalDays is the fixed bucket order. Any other day label sorts after
// these, lexicographically.
var canonicalDays = []string{dayT14, dayT7, dayT3, dayT1, dayOf}

var canonicalIndex = func() map[string]int {
	m := make(map[string]int, len(canonicalDays))
	for i, d := range canonicalDays {
		m[d] = i
	}
	return m
}()

// schedule accumulates (day, task) pairs into insertion-ordered unique
// task lists per day bucket.
type schedule struct {
	dayOrder []string
	tasks    map[string][]string
	seen     map[string]map[string]bool
}

func newSchedule() *schedule {
	return &schedule{
		tasks: make(map[string][]string),
		seen:  make(map[string]map[string]bool),
	}
}

func (s *schedule) add(day string, tasks ...string) {
	if day == "" {
		return
	}
	if _, ok := s.seen[day]; !ok {
		s.dayOrder = append(s.dayOrder, day)
		s.seen[day] = make(map[string]bool)
	}
	for _, task := range tasks {
		if task == "" || s.seen[day][task] {
			continue
		}
		s.seen[day][task] = true
		s.tasks[day] = append(s.tasks[day], task)
	}
}

func (s *schedule) addEntries(entries []TimelineEntry) {
	for _, e := range entries {
		s.add(e.Day, e.Tasks...)
	}
}

// entries returns the populated buckets: canonical days first in fixed
// order, then any other labels ascending. Empty buckets are dropped.
func (s *schedule) entries() []TimelineEntry {
	days := append([]string(nil), s.dayOrder...)
	sort.SliceStable(days, func(i, j int) bool {
		ci, iOK := canonicalIndex[days[i]]
		cj, jOK := canonicalIndex[days[j]]
		switch {
		case iOK && jOK:
			return ci < cj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return days[i] < days[j]
		}
	})
	var out []TimelineEntry
	for _, day := range days {
		if len(s.tasks[day]) == 0 {
			continue
		}
		out = append(out, TimelineEntry{
			Day:   day,
			Tasks: append([]string(nil), s.tasks[day]...),
		})
	}
	return out
}

// mergeTimeline folds additions into an existing timeline using the same
// bucket and ordering rules the builder uses.
func mergeTimeline(existing, additions []TimelineEntry) []TimelineEntry {
	s := newSchedule()
	s.addEntries(existing)
	s.addEntries(additions)
	return s.entries()
}

// timelineCtx are the trip facts that drive conditional timeline rules.
type timelineCtx struct {
	work            bool
	friends         bool
	infantOrToddler bool
	solo            bool
	accommodation   string
	venueActivity   bool
}

func buildTimeline(ctx timelineCtx) []TimelineEntry {
	s := newSchedule()

	s.add(dayT14,
		"Start the shared packing list",
		"Check IDs/passports and medication refills",
	)
	s.add(dayT7,
		"Confirm tickets and reservations",
		"Arrange pet/house care",
	)
	s.add(dayT3,
		"Begin staging outfits",
		"Buy missing toiletries and snacks",
		"Get small bills for tips",
	)
	s.add(dayT1,
		"Charge electronics",
		"Pack carry-on essentials",
	)
	s.add(dayOf,
		"Leave on time",
		"Run the final house checklist",
	)

	if ctx.work {
		s.add(dayT7, "Confirm meeting agenda")
		s.add(dayT3, "Finalize work materials")
		s.add(dayT1, "Set out-of-office reply")
	}
	if ctx.friends {
		s.add(dayT7, "Coordinate arrivals and rides with friends")
		s.add(dayT3, "Share packing and carpool plans")
		s.add(dayOf, "Touch base on the meetup point")
	}
	if ctx.infantOrToddler {
		s.add(dayT7, "Confirm crib/pack-n-play availability")
		s.add(dayT3, "Restock diaper supplies")
		s.add(dayT1, "Pre-pack the diaper bag")
	}
	if ctx.solo {
		s.add(dayT3, "Share itinerary with a trusted contact")
		s.add(dayT1, "Enable location sharing")
	}
	switch ctx.accommodation {
	case "hotel":
		s.add(dayT7, "Confirm hotel reservation")
		s.add(dayT1, "Do online check-in / set up digital key")
		s.add(dayOf, "Have ID and card ready for check-in")
	case "family":
		s.add(dayT7, "Coordinate arrival plans with hosts")
		s.add(dayT1, "Pack the thank-you gift")
		s.add(dayOf, "Send hosts an updated ETA")
	case "rental":
		s.add(dayT7, "Review check-in instructions")
		s.add(dayT1, "Verify lockbox code and Wi-Fi details")
		s.add(dayOf, "Follow self-check-in steps")
	}
	if ctx.venueActivity {
		s.add(dayT3, "Check venue bag policy")
	}

	return s.entries()
}
