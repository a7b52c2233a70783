package domain

import "strings"

// NormalizeTravelers trims names and coerces traveler types to the known
// set, defaulting anything unrecognized to adult. Ages are already coerced
// during decoding; this never invents an age for an unknown one.
func NormalizeTravelers(travelers []Traveler) []Traveler {
	out := make([]Traveler, 0, len(travelers))
	for _, p := range travelers {
		t := p.Type
		if t != TravelerChild {
			t = TravelerAdult
		}
		out = append(out, Traveler{
			Name: strings.TrimSpace(p.Name),
			Type: t,
			Age:  p.Age,
		})
	}
	return out
}

// NormalizeModes drops unrecognized travel modes and duplicates while
// preserving input order. An empty result is valid.
func NormalizeModes(modes []TravelMode) []TravelMode {
	var out []TravelMode
	seen := make(map[TravelMode]bool)
	for _, m := range modes {
		m = TravelMode(strings.ToLower(strings.TrimSpace(string(m))))
		if !ValidTravelModes[m] || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// NormalizeTrip applies field-level normalization to a trip input:
// trimmed destination, end date defaulted to start, valid modes only,
// normalized travelers, and a coerced trip type and accommodation.
func NormalizeTrip(t TripInput) TripInput {
	t.Destination = strings.TrimSpace(t.Destination)
	t.StartDate = strings.TrimSpace(t.StartDate)
	t.EndDate = strings.TrimSpace(t.EndDate)
	if t.EndDate == "" {
		t.EndDate = t.StartDate
	}
	t.Modes = NormalizeModes(t.Modes)
	t.Travelers = NormalizeTravelers(t.Travelers)

	switch t.TripType {
	case TripWork, TripBoth:
	default:
		t.TripType = TripPersonal
	}

	switch t.Accommodation {
	case StayHotel, StayFamily, StayRental:
	default:
		t.Accommodation = StayNone
	}

	t.Transportation = strings.TrimSpace(t.Transportation)
	return t
}
