package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type TravelMode string

const (
	ModeFly     TravelMode = "fly"
	ModeDrive   TravelMode = "drive"
	ModeCruise  TravelMode = "cruise"
	ModeDayTrip TravelMode = "day_trip"
)

// ValidTravelModes is the canonical set of accepted travel mode strings.
var ValidTravelModes = map[TravelMode]bool{
	ModeFly: true, ModeDrive: true, ModeCruise: true, ModeDayTrip: true,
}

type TravelerType string

const (
	TravelerAdult TravelerType = "adult"
	TravelerChild TravelerType = "child"
)

type TripType string

const (
	TripPersonal TripType = "personal"
	TripWork     TripType = "work"
	TripBoth     TripType = "both"
)

// IsWork reports whether the trip includes a work component.
func (t TripType) IsWork() bool {
	return t == TripWork || t == TripBoth
}

type Accommodation string

const (
	StayHotel  Accommodation = "hotel"
	StayFamily Accommodation = "family"
	StayRental Accommodation = "rental"
	StayNone   Accommodation = ""
)

type Activity string

const (
	ActivityLotsOfWalking     Activity = "lots_of_walking"
	ActivityFancyDinner       Activity = "fancy_dinner"
	ActivityBeach             Activity = "beach"
	ActivityPool              Activity = "pool"
	ActivityHiking            Activity = "hiking"
	ActivityBoatingSnorkeling Activity = "boating_snorkeling"
	ActivitySkiingSnow        Activity = "skiing_snow"
	ActivityFishing           Activity = "fishing"
	ActivityCamping           Activity = "camping"
	ActivitySportsEvent       Activity = "sports_event"
	ActivityConcertShow       Activity = "concert_show"
	ActivityMuseumsTours      Activity = "museums_tours"
	ActivityThemePark         Activity = "theme_park"
)

// activityLabels maps activity tags to their human-readable display labels.
var activityLabels = map[Activity]string{
	ActivityLotsOfWalking:     "Lots of walking",
	ActivityFancyDinner:       "Fancy dinner",
	ActivityBeach:             "Beach",
	ActivityPool:              "Pool",
	ActivityHiking:            "Hiking",
	ActivityBoatingSnorkeling: "Boating / Snorkeling",
	ActivitySkiingSnow:        "Skiing / Snow play",
	ActivityFishing:           "Fishing",
	ActivityCamping:           "Camping",
	ActivitySportsEvent:       "Sports event",
	ActivityConcertShow:       "Concert / Show",
	ActivityMuseumsTours:      "Museums / Tours",
	ActivityThemePark:         "Theme Park",
}

// Label returns the display label for the activity. Unknown tags get a
// best-effort label (underscores to spaces, words title-cased) so free-form
// tags still render reasonably.
func (a Activity) Label() string {
	if label, ok := activityLabels[a]; ok {
		return label
	}
	words := strings.Fields(strings.ReplaceAll(string(a), "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// outdoorActivities is the set of activities that imply extended time outside.
// Any one of them triggers the sun-protection packing rule.
var outdoorActivities = map[Activity]bool{
	ActivityBeach:             true,
	ActivityPool:              true,
	ActivityHiking:            true,
	ActivityBoatingSnorkeling: true,
	ActivitySkiingSnow:        true,
	ActivityCamping:           true,
	ActivityFishing:           true,
	ActivitySportsEvent:       true,
	ActivityThemePark:         true,
}

// IsOutdoor reports whether the activity belongs to the outdoor set.
func (a Activity) IsOutdoor() bool {
	return outdoorActivities[a]
}

// venueActivities are ticketed-venue activities that carry bag-policy rules.
var venueActivities = map[Activity]bool{
	ActivitySportsEvent: true,
	ActivityConcertShow: true,
	ActivityThemePark:   true,
}

// IsVenue reports whether the activity takes place at a ticketed venue.
func (a Activity) IsVenue() bool {
	return venueActivities[a]
}
