package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TripInput is the normalized trip submission the plan builder consumes.
// It is produced by an upstream form/serialization layer; optional fields
// may be absent and must degrade gracefully downstream.
type TripInput struct {
	Destination    string          `json:"destination"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date,omitempty"`
	Modes          []TravelMode    `json:"modes"`
	TripType       TripType        `json:"trip_type,omitempty"`
	Accommodation  Accommodation   `json:"accommodation,omitempty"`
	Transportation string          `json:"transportation,omitempty"`
	Travelers      []Traveler      `json:"travelers"`
	Activities     []Activity      `json:"activities"`
	Flags          ContextFlags    `json:"context_flags,omitempty"`
	Logistics      Logistics       `json:"logistics,omitempty"`
	Venue          *VenueInput     `json:"venue_input,omitempty"`
	Weather        *WeatherSummary `json:"weather_summary,omitempty"`
}

// HasMode reports whether the trip uses the given travel mode.
func (t TripInput) HasMode(m TravelMode) bool {
	for _, mode := range t.Modes {
		if mode == m {
			return true
		}
	}
	return false
}

// ContextFlags are independent, combinable traveler-context booleans.
type ContextFlags struct {
	TravelingSolo        bool `json:"traveling_solo,omitempty"`
	SingleParent         bool `json:"single_parent,omitempty"`
	TravelingWithFriends bool `json:"traveling_with_friends,omitempty"`
}

// Traveler is one person on the trip. An empty name falls back to a
// generated label when the packing lists are built.
type Traveler struct {
	Name string       `json:"name"`
	Type TravelerType `json:"type"`
	Age  Age          `json:"age"`
}

// Age is a traveler age in whole years. Unknown is distinct from zero:
// zero is a valid infant age and drives different packing rules, so blank
// input must never collapse to it.
type Age struct {
	Known bool
	Years int
}

// AgeOf returns a known Age of the given years.
func AgeOf(years int) Age {
	return Age{Known: true, Years: years}
}

// UnmarshalJSON accepts a number, a numeric string, or blank/null.
// Anything unparseable decodes as unknown rather than failing.
func (a *Age) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = Age{}
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		*a = Age{}
		return nil
	}
	*a = Age{Known: true, Years: n}
	return nil
}

// MarshalJSON emits the age as a number, or null when unknown.
func (a Age) MarshalJSON() ([]byte, error) {
	if !a.Known {
		return []byte("null"), nil
	}
	return json.Marshal(a.Years)
}

// AtMost reports whether the age is known and at most years.
func (a Age) AtMost(years int) bool {
	return a.Known && a.Years <= years
}

// Logistics carries the per-mode logistics details. Each variant is
// optional and present only when its mode was selected.
type Logistics struct {
	Fly     *FlyLogistics     `json:"fly,omitempty"`
	Drive   *DriveLogistics   `json:"drive,omitempty"`
	Cruise  *CruiseLogistics  `json:"cruise,omitempty"`
	DayTrip *DayTripLogistics `json:"day_trip,omitempty"`
}

type FlyLogistics struct {
	DepartureAirport string `json:"departure_airport,omitempty"`
	Airline          string `json:"airline,omitempty"`
	FlightTimeLocal  string `json:"flight_time_local,omitempty"`
}

type DriveLogistics struct {
	StartLocation  string  `json:"start_location,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
}

type CruiseLogistics struct {
	CruiseLine    string `json:"cruise_line,omitempty"`
	DeparturePort string `json:"departure_port,omitempty"`
}

type DayTripLogistics struct {
	Transport string `json:"transport,omitempty"`
}

// VenueInput holds optional venue details for bag-policy guidance.
type VenueInput struct {
	Name       string     `json:"name,omitempty"`
	City       string     `json:"city,omitempty"`
	TypeHint   string     `json:"type_hint,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
}

// WeatherSummary is a pre-computed weather digest for the trip window.
// Numeric fields are nil when the upstream fetch failed or was skipped.
type WeatherSummary struct {
	AvgHighF        *float64 `json:"avg_high_f"`
	AvgLowF         *float64 `json:"avg_low_f"`
	WetDaysPct      *float64 `json:"wet_days_pct"`
	Notes           string   `json:"notes,omitempty"`
	MatchedLocation string   `json:"matched_location,omitempty"`
}
