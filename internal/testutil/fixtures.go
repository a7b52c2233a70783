package testutil

import (
	"github.com/fulfilled/tripprep/internal/domain"
)

// TripOption mutates a fixture trip input.
type TripOption func(*domain.TripInput)

func WithDestination(d string) TripOption {
	return func(t *domain.TripInput) { t.Destination = d }
}

func WithDates(start, end string) TripOption {
	return func(t *domain.TripInput) {
		t.StartDate = start
		t.EndDate = end
	}
}

func WithModes(modes ...domain.TravelMode) TripOption {
	return func(t *domain.TripInput) { t.Modes = modes }
}

func WithAccommodation(a domain.Accommodation) TripOption {
	return func(t *domain.TripInput) { t.Accommodation = a }
}

func WithActivities(activities ...domain.Activity) TripOption {
	return func(t *domain.TripInput) { t.Activities = activities }
}

func WithTravelers(travelers ...domain.Traveler) TripOption {
	return func(t *domain.TripInput) { t.Travelers = travelers }
}

func WithTripType(tt domain.TripType) TripOption {
	return func(t *domain.TripInput) { t.TripType = tt }
}

func WithWeather(w *domain.WeatherSummary) TripOption {
	return func(t *domain.TripInput) { t.Weather = w }
}

// NewTrip builds a two-adult fly trip fixture, customizable via options.
func NewTrip(opts ...TripOption) domain.TripInput {
	trip := domain.TripInput{
		Destination: "Lisbon",
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-15",
		Modes:       []domain.TravelMode{domain.ModeFly},
		Travelers: []domain.Traveler{
			{Name: "Ana", Type: domain.TravelerAdult},
			{Name: "Rui", Type: domain.TravelerAdult},
		},
	}
	for _, opt := range opts {
		opt(&trip)
	}
	return trip
}

// Adult returns an adult traveler fixture.
func Adult(name string) domain.Traveler {
	return domain.Traveler{Name: name, Type: domain.TravelerAdult}
}

// Child returns a child traveler fixture with a known age.
func Child(name string, age int) domain.Traveler {
	return domain.Traveler{Name: name, Type: domain.TravelerChild, Age: domain.AgeOf(age)}
}
