package plan

import "github.com/fulfilled/tripprep/internal/domain"

// Plan is the structured trip-prep output: packing lists, timeline,
// advisory lists, and a basics summary. It is built once per submission
// and optionally enriched by MergeSuggestions afterwards.
type Plan struct {
	Basics     Basics                `json:"basics"`
	Activities []string              `json:"activities"`
	Weather    domain.WeatherSummary `json:"weather"`
	Timeline   []TimelineEntry       `json:"timeline"`
	Packing    Packing               `json:"packing"`
	Overpack   Overpack              `json:"overpack"`
	Lodging    *Lodging              `json:"lodging,omitempty"`

	// Suggestion-filled fields, empty until MergeSuggestions runs.
	Blurb          string   `json:"ai_blurb,omitempty"`
	VenueTips      []string `json:"ai_venue_tips,omitempty"`
	ExtraToDos     []string `json:"ai_extra_todos,omitempty"`
	SmartMustHaves []string `json:"smart_must_haves,omitempty"`
}

// Basics summarizes the trip for display headers.
type Basics struct {
	Destination        string          `json:"destination"`
	Dates              DateRange       `json:"dates"`
	Travelers          TravelerSummary `json:"travelers"`
	Accommodation      string          `json:"accommodation"`
	Transportation     string          `json:"transportation"`
	Modes              []string        `json:"modes,omitempty"`
	HasInfantOrToddler bool            `json:"has_infant_or_toddler"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TravelerSummary counts and names the travelers. AgesChildren holds only
// the known children's ages; unknown ages are omitted rather than zeroed.
type TravelerSummary struct {
	Total            int      `json:"total"`
	Adults           int      `json:"adults"`
	Children         int      `json:"children"`
	Names            []string `json:"names,omitempty"`
	AgesChildren     []int    `json:"ages_children,omitempty"`
	YoungestChildAge *int     `json:"youngest_child_age,omitempty"`
}

// TimelineEntry is one day bucket of prep tasks. Day is either one of the
// canonical labels (T-14, T-7, T-3, T-1, Day of) or a free-form label.
type TimelineEntry struct {
	Day   string   `json:"day"`
	Tasks []string `json:"tasks"`
}

// Packing holds the per-person and combined packing lists plus their
// essential-only ("minimalist") subsets. PersonOrder preserves the
// traveler order for deterministic rendering; ByPerson keys match it.
type Packing struct {
	ByPerson        map[string][]string `json:"byPerson"`
	PersonOrder     []string            `json:"personOrder"`
	Combined        []string            `json:"combined"`
	MinimalByPerson map[string][]string `json:"minimalByPerson"`
	MinimalCombined []string            `json:"minimalCombined"`
}

// Overpack is the pack-smarter advisory: what to leave home, what to grab
// on the way out, and how to prep the house.
type Overpack struct {
	Skip       []string `json:"skip"`
	LastMinute []string `json:"lastMinute"`
	HousePrep  []string `json:"housePrep"`
}

// Lodging carries optional lodging checklists; present only when an
// infant or toddler (known age <= 2) is traveling.
type Lodging struct {
	InfantToddler []string `json:"infantToddler"`
}

// Clone returns a deep copy of the plan. MergeSuggestions works on a
// clone so callers keep their original value untouched.
func (p *Plan) Clone() *Plan {
	next := *p
	next.Activities = cloneStrings(p.Activities)
	next.Timeline = make([]TimelineEntry, len(p.Timeline))
	for i, e := range p.Timeline {
		next.Timeline[i] = TimelineEntry{Day: e.Day, Tasks: cloneStrings(e.Tasks)}
	}
	next.Packing = Packing{
		ByPerson:        cloneStringsMap(p.Packing.ByPerson),
		PersonOrder:     cloneStrings(p.Packing.PersonOrder),
		Combined:        cloneStrings(p.Packing.Combined),
		MinimalByPerson: cloneStringsMap(p.Packing.MinimalByPerson),
		MinimalCombined: cloneStrings(p.Packing.MinimalCombined),
	}
	next.Overpack = Overpack{
		Skip:       cloneStrings(p.Overpack.Skip),
		LastMinute: cloneStrings(p.Overpack.LastMinute),
		HousePrep:  cloneStrings(p.Overpack.HousePrep),
	}
	if p.Lodging != nil {
		next.Lodging = &Lodging{InfantToddler: cloneStrings(p.Lodging.InfantToddler)}
	}
	next.Basics.Modes = cloneStrings(p.Basics.Modes)
	next.Basics.Travelers.Names = cloneStrings(p.Basics.Travelers.Names)
	next.Basics.Travelers.AgesChildren = append([]int(nil), p.Basics.Travelers.AgesChildren...)
	if p.Basics.Travelers.YoungestChildAge != nil {
		age := *p.Basics.Travelers.YoungestChildAge
		next.Basics.Travelers.YoungestChildAge = &age
	}
	next.VenueTips = cloneStrings(p.VenueTips)
	next.ExtraToDos = cloneStrings(p.ExtraToDos)
	next.SmartMustHaves = cloneStrings(p.SmartMustHaves)
	return &next
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneStringsMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = cloneStrings(v)
	}
	return out
}
