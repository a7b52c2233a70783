package plan

import (
	"errors"
	"fmt"

	"github.com/fulfilled/tripprep/internal/domain"
)

// ErrInvalidInput is returned when the trip input is missing the fields
// no plan can be built without. Missing optional fields never cause it.
var ErrInvalidInput = errors.New("invalid trip input")

// infantToddlerMaxAge bounds the crib/sleep-setup rules; babyGearMaxAge
// bounds the diapers/stroller packing rule. Both require a known age.
const (
	infantToddlerMaxAge = 2
	babyGearMaxAge      = 3
)

// Build derives a complete trip-prep plan from the input. It is a pure
// function: identical input yields an identical plan. Optional fields
// degrade to empty lists or nil rather than failing.
func Build(in domain.TripInput) (*Plan, error) {
	in = domain.NormalizeTrip(in)
	if in.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrInvalidInput)
	}
	if in.StartDate == "" {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	// The solo rules key off the explicit flag or a single provided
	// traveler. A synthesized fallback traveler alone does not count.
	solo := in.Flags.TravelingSolo || len(in.Travelers) == 1

	travelers := in.Travelers
	if len(travelers) == 0 {
		name := "Adult"
		if in.Flags.TravelingSolo {
			name = "Traveler"
		}
		travelers = []domain.Traveler{{Name: name, Type: domain.TravelerAdult}}
	}

	names := displayNames(travelers)
	shared := sharedItems(in)

	packing := Packing{
		ByPerson:        make(map[string][]string, len(travelers)),
		MinimalByPerson: make(map[string][]string, len(travelers)),
		PersonOrder:     names,
	}
	combined := newItemList()
	for i, t := range travelers {
		list := newItemList()
		list.addAll(shared)
		list.addAll(travelerItems(in, t, solo))
		packing.ByPerson[names[i]] = list.items()
		packing.MinimalByPerson[names[i]] = list.essentials()
		combined.addAll(shared)
		combined.addAll(travelerItems(in, t, solo))
	}
	packing.Combined = combined.items()
	packing.MinimalCombined = combined.essentials()

	basics := buildBasics(in, travelers, names)

	p := &Plan{
		Basics:     basics,
		Activities: activityLabels(in.Activities),
		Timeline: buildTimeline(timelineCtx{
			work:            in.TripType.IsWork(),
			friends:         in.Flags.TravelingWithFriends,
			infantOrToddler: basics.HasInfantOrToddler,
			solo:            solo,
			accommodation:   string(in.Accommodation),
			venueActivity:   hasVenueActivity(in),
		}),
		Packing: packing,
		Overpack: buildOverpack(overpackCtx{
			hasChildren:   basics.Travelers.Children > 0,
			work:          in.TripType.IsWork(),
			solo:          solo,
			accommodation: in.Accommodation,
		}),
	}
	if in.Weather != nil {
		p.Weather = *in.Weather
	}
	if basics.HasInfantOrToddler {
		p.Lodging = &Lodging{InfantToddler: infantToddlerLodging()}
	}
	return p, nil
}

// sharedItems are the entries every traveler receives: base, activity,
// lodging, transportation, mode, and weather rules in that order.
func sharedItems(in domain.TripInput) []packItem {
	list := newItemList()
	list.addAll(baseCommonItems())
	outdoor := false
	for _, a := range in.Activities {
		list.addAll(activityItems[a])
		if a.IsOutdoor() {
			outdoor = true
		}
	}
	if outdoor {
		list.addAll(sunProtectionItems())
	}
	list.addAll(lodgingItems(in.Accommodation))
	list.addAll(transportationItems(in))
	list.addAll(modeItems(in))
	list.addAll(weatherItems(in.Weather))

	out := make([]packItem, 0, len(list.order))
	for _, label := range list.order {
		out = append(out, packItem{label: label, essential: list.flags[label]})
	}
	return out
}

// travelerItems are the per-person additions on top of the shared list.
func travelerItems(in domain.TripInput, t domain.Traveler, solo bool) []packItem {
	var out []packItem
	switch t.Type {
	case domain.TravelerChild:
		out = append(out, childItems()...)
		if t.Age.AtMost(babyGearMaxAge) {
			out = append(out, babyItems()...)
		}
		for _, a := range in.Activities {
			if a == domain.ActivityThemePark {
				out = append(out, item("Stroller name tag"))
				break
			}
		}
	default:
		out = append(out, adultModeItems(in)...)
		out = append(out, workItems(in.TripType)...)
	}
	if solo {
		out = append(out, soloItems()...)
	}
	return out
}

// displayNames resolves each traveler's list key: trimmed name, or a
// generated label by type, with duplicates suffixed "#2", "#3" and so on
// so no one's list overwrites another's. The suffixed candidate is checked
// against every name assigned so far, since an input name may itself look
// like a suffixed one ("Adult #2").
func displayNames(travelers []domain.Traveler) []string {
	used := make(map[string]bool, len(travelers))
	names := make([]string, len(travelers))
	for i, t := range travelers {
		base := t.Name
		if base == "" {
			if t.Type == domain.TravelerChild {
				base = "Child"
			} else {
				base = "Adult"
			}
		}
		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s #%d", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

func buildBasics(in domain.TripInput, travelers []domain.Traveler, names []string) Basics {
	summary := TravelerSummary{Total: len(travelers), Names: names}
	hasInfantOrToddler := false
	for _, t := range travelers {
		if t.Type == domain.TravelerChild {
			summary.Children++
			if t.Age.Known {
				summary.AgesChildren = append(summary.AgesChildren, t.Age.Years)
				if summary.YoungestChildAge == nil || t.Age.Years < *summary.YoungestChildAge {
					age := t.Age.Years
					summary.YoungestChildAge = &age
				}
			}
		} else {
			summary.Adults++
		}
		if t.Age.AtMost(infantToddlerMaxAge) {
			hasInfantOrToddler = true
		}
	}

	modes := make([]string, 0, len(in.Modes))
	for _, m := range in.Modes {
		modes = append(modes, string(m))
	}

	return Basics{
		Destination:        in.Destination,
		Dates:              DateRange{Start: in.StartDate, End: in.EndDate},
		Travelers:          summary,
		Accommodation:      string(in.Accommodation),
		Transportation:     in.Transportation,
		Modes:              modes,
		HasInfantOrToddler: hasInfantOrToddler,
	}
}

func activityLabels(activities []domain.Activity) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.Label())
	}
	return out
}

func hasVenueActivity(in domain.TripInput) bool {
	for _, a := range in.Activities {
		if a.IsVenue() {
			return true
		}
	}
	if in.Venue != nil {
		for _, a := range in.Venue.Activities {
			if a.IsVenue() {
				return true
			}
		}
	}
	return false
}
