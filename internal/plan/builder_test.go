package plan

import (
	"testing"

	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func baseTrip() domain.TripInput {
	return domain.TripInput{
		Destination: "Lisbon",
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-15",
		Modes:       []domain.TravelMode{domain.ModeFly},
		Travelers: []domain.Traveler{
			{Name: "Ana", Type: domain.TravelerAdult},
			{Name: "Rui", Type: domain.TravelerAdult},
		},
	}
}

func TestBuild_RequiresDestinationAndStartDate(t *testing.T) {
	_, err := Build(domain.TripInput{StartDate: "2026-09-10"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Build(domain.TripInput{Destination: "Lisbon"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Build(domain.TripInput{Destination: "  Lisbon  ", StartDate: " 2026-09-10 "})
	assert.NoError(t, err)
}

func TestBuild_Deterministic(t *testing.T) {
	in := baseTrip()
	in.Activities = []domain.Activity{domain.ActivityBeach, domain.ActivityHiking}
	in.Accommodation = domain.StayHotel
	in.Weather = &domain.WeatherSummary{AvgHighF: floatPtr(88)}

	first, err := Build(in)
	require.NoError(t, err)
	second, err := Build(in)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must yield an identical plan")
}

func TestBuild_MinimalListsAreSubsets(t *testing.T) {
	in := baseTrip()
	in.Activities = []domain.Activity{domain.ActivityBeach, domain.ActivitySkiingSnow, domain.ActivityThemePark}
	in.TripType = domain.TripBoth
	in.Accommodation = domain.StayRental
	in.Modes = []domain.TravelMode{domain.ModeFly, domain.ModeCruise}
	in.Travelers = append(in.Travelers, domain.Traveler{Name: "Mia", Type: domain.TravelerChild, Age: domain.AgeOf(1)})

	p, err := Build(in)
	require.NoError(t, err)

	inSet := func(items []string) map[string]bool {
		set := make(map[string]bool, len(items))
		for _, s := range items {
			set[s] = true
		}
		return set
	}

	combined := inSet(p.Packing.Combined)
	for _, item := range p.Packing.MinimalCombined {
		assert.True(t, combined[item], "minimal item %q missing from combined", item)
	}
	for _, name := range p.Packing.PersonOrder {
		full := inSet(p.Packing.ByPerson[name])
		for _, item := range p.Packing.MinimalByPerson[name] {
			assert.True(t, full[item], "%s: minimal item %q missing from full list", name, item)
		}
	}
}

func TestBuild_NoDuplicatesAnywhere(t *testing.T) {
	in := baseTrip()
	// Beach and pool both add a swimsuit; fly mode and adult rules overlap.
	in.Activities = []domain.Activity{domain.ActivityBeach, domain.ActivityPool}
	in.Modes = []domain.TravelMode{domain.ModeFly, domain.ModeCruise}

	p, err := Build(in)
	require.NoError(t, err)

	assertUnique := func(label string, items []string) {
		seen := make(map[string]bool, len(items))
		for _, s := range items {
			assert.False(t, seen[s], "%s: duplicate %q", label, s)
			seen[s] = true
		}
	}
	assertUnique("combined", p.Packing.Combined)
	assertUnique("minimalCombined", p.Packing.MinimalCombined)
	for name, items := range p.Packing.ByPerson {
		assertUnique("byPerson/"+name, items)
	}
	for _, e := range p.Timeline {
		assertUnique("timeline/"+e.Day, e.Tasks)
	}
	assertUnique("skip", p.Overpack.Skip)
	assertUnique("lastMinute", p.Overpack.LastMinute)
	assertUnique("housePrep", p.Overpack.HousePrep)

	countSwimsuits := 0
	for _, s := range p.Packing.Combined {
		if s == "Swimsuit" {
			countSwimsuits++
		}
	}
	assert.Equal(t, 1, countSwimsuits, "beach and pool both add a swimsuit but it appears once")
}

func TestBuild_ToddlerBeachHotelTrip(t *testing.T) {
	in := domain.TripInput{
		Destination:   "San Diego",
		StartDate:     "2026-07-04",
		Modes:         []domain.TravelMode{domain.ModeFly},
		Accommodation: domain.StayHotel,
		Activities:    []domain.Activity{domain.ActivityBeach},
		Travelers: []domain.Traveler{
			{Name: "Sam", Type: domain.TravelerAdult},
			{Name: "Lily", Type: domain.TravelerChild, Age: domain.AgeOf(2)},
		},
	}

	p, err := Build(in)
	require.NoError(t, err)

	assert.Contains(t, p.Packing.ByPerson["Lily"], "Diapers / wipes")
	assert.Contains(t, p.Packing.ByPerson["Lily"], "Stroller")
	assert.Contains(t, p.Packing.MinimalByPerson["Lily"], "Diapers / wipes")
	assert.Contains(t, p.Packing.MinimalByPerson["Lily"], "Stroller")
	assert.NotContains(t, p.Packing.ByPerson["Sam"], "Diapers / wipes")

	require.NotNil(t, p.Lodging, "toddler on the trip should produce the infant lodging block")
	assert.NotEmpty(t, p.Lodging.InfantToddler)
	assert.True(t, p.Basics.HasInfantOrToddler)

	var dayOfTasks []string
	for _, e := range p.Timeline {
		if e.Day == "Day of" {
			dayOfTasks = e.Tasks
		}
	}
	assert.Contains(t, dayOfTasks, "Have ID and card ready for check-in")
	assert.Contains(t, p.Overpack.Skip, "Towels (hotel provides)")
}

func TestBuild_NoTravelersFallsBackToSingleAdult(t *testing.T) {
	in := domain.TripInput{
		Destination: "Paris",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-01",
		Modes:       []domain.TravelMode{domain.ModeDayTrip},
	}

	p, err := Build(in)
	require.NoError(t, err)

	require.Equal(t, []string{"Adult"}, p.Packing.PersonOrder)
	assert.Equal(t, 1, p.Basics.Travelers.Total)
	assert.Nil(t, p.Lodging)

	base := newItemList()
	base.addAll(baseCommonItems())
	assert.Equal(t, base.items(), p.Packing.ByPerson["Adult"], "fallback adult gets exactly the base items")

	days := make([]string, 0, len(p.Timeline))
	for _, e := range p.Timeline {
		days = append(days, e.Day)
	}
	assert.Equal(t, []string{"T-14", "T-7", "T-3", "T-1", "Day of"}, days,
		"nothing conditional applies, only the baseline buckets remain")
}

func TestBuild_SoloFlagNamesFallbackTraveler(t *testing.T) {
	in := domain.TripInput{
		Destination: "Kyoto",
		StartDate:   "2026-03-01",
		Flags:       domain.ContextFlags{TravelingSolo: true},
	}

	p, err := Build(in)
	require.NoError(t, err)

	require.Equal(t, []string{"Traveler"}, p.Packing.PersonOrder)
	assert.Contains(t, p.Packing.ByPerson["Traveler"], "Personal safety alarm")

	var t3 []string
	for _, e := range p.Timeline {
		if e.Day == "T-3" {
			t3 = e.Tasks
		}
	}
	assert.Contains(t, t3, "Share itinerary with a trusted contact")
	assert.Contains(t, p.Overpack.HousePrep, "Share your itinerary with someone you trust")
}

func TestBuild_SingleTravelerCountsAsSolo(t *testing.T) {
	in := baseTrip()
	in.Travelers = in.Travelers[:1]

	p, err := Build(in)
	require.NoError(t, err)
	assert.Contains(t, p.Packing.ByPerson["Ana"], "Portable door wedge")
}

func TestBuild_WeatherThresholdsAllEssential(t *testing.T) {
	in := baseTrip()
	in.Weather = &domain.WeatherSummary{
		AvgHighF:   floatPtr(95),
		AvgLowF:    floatPtr(50),
		WetDaysPct: floatPtr(40),
	}

	p, err := Build(in)
	require.NoError(t, err)

	// 95 >= 80 and 40 >= 30 fire; 50 > 45 does not.
	for _, want := range []string{"Extra sunscreen", "Hat / sunglasses", "Compact umbrella / rain jacket"} {
		assert.Contains(t, p.Packing.Combined, want)
		assert.Contains(t, p.Packing.MinimalCombined, want, "%q is weather-driven and must be essential", want)
	}
	assert.NotContains(t, p.Packing.Combined, "Warm jacket / layers")
	assert.Equal(t, *in.Weather, p.Weather, "weather summary passes through to the plan")
}

func TestBuild_MissingWeatherDegrades(t *testing.T) {
	p, err := Build(baseTrip())
	require.NoError(t, err)

	assert.Nil(t, p.Weather.AvgHighF)
	assert.Nil(t, p.Weather.AvgLowF)
	assert.Nil(t, p.Weather.WetDaysPct)
	assert.NotContains(t, p.Packing.Combined, "Extra sunscreen")
}

func TestBuild_UnknownAgeNeverTriggersInfantRules(t *testing.T) {
	in := baseTrip()
	in.Travelers = []domain.Traveler{
		{Name: "Pat", Type: domain.TravelerAdult},
		{Name: "Kit", Type: domain.TravelerChild}, // age unknown
	}

	p, err := Build(in)
	require.NoError(t, err)

	assert.NotContains(t, p.Packing.ByPerson["Kit"], "Diapers / wipes",
		"unknown age is not age 0")
	assert.Nil(t, p.Lodging)
	assert.False(t, p.Basics.HasInfantOrToddler)
	assert.Empty(t, p.Basics.Travelers.AgesChildren, "unknown ages are omitted, not zeroed")
	assert.Contains(t, p.Packing.ByPerson["Kit"], "Favorite snack", "child rules still apply")
}

func TestBuild_AgeZeroIsAnInfant(t *testing.T) {
	in := baseTrip()
	in.Travelers = append(in.Travelers, domain.Traveler{Name: "Noa", Type: domain.TravelerChild, Age: domain.AgeOf(0)})

	p, err := Build(in)
	require.NoError(t, err)

	require.NotNil(t, p.Lodging)
	assert.Contains(t, p.Packing.ByPerson["Noa"], "Diapers / wipes")
	require.NotNil(t, p.Basics.Travelers.YoungestChildAge)
	assert.Equal(t, 0, *p.Basics.Travelers.YoungestChildAge)
}

func TestBuild_DuplicateEmptyNamesGetDistinctLists(t *testing.T) {
	in := baseTrip()
	in.Travelers = []domain.Traveler{
		{Type: domain.TravelerChild, Age: domain.AgeOf(4)},
		{Type: domain.TravelerChild, Age: domain.AgeOf(1)},
		{Name: "Ana", Type: domain.TravelerAdult},
		{Name: "Ana", Type: domain.TravelerAdult},
	}

	p, err := Build(in)
	require.NoError(t, err)

	require.Equal(t, []string{"Child", "Child #2", "Ana", "Ana #2"}, p.Packing.PersonOrder)
	assert.Len(t, p.Packing.ByPerson, 4)
	assert.Contains(t, p.Packing.ByPerson["Child #2"], "Diapers / wipes", "age 1")
	assert.NotContains(t, p.Packing.ByPerson["Child"], "Diapers / wipes", "age 4")
}

func TestBuild_NameCollidingWithGeneratedSuffix(t *testing.T) {
	in := baseTrip()
	in.Travelers = []domain.Traveler{
		{Name: "Adult #2", Type: domain.TravelerAdult},
		{Type: domain.TravelerAdult},
		{Type: domain.TravelerAdult},
	}

	p, err := Build(in)
	require.NoError(t, err)

	require.Equal(t, []string{"Adult #2", "Adult", "Adult #3"}, p.Packing.PersonOrder)
	assert.Len(t, p.Packing.ByPerson, 3)
	assert.Len(t, p.Packing.MinimalByPerson, 3)
}

func TestBuild_WorkTripAdultRules(t *testing.T) {
	in := baseTrip()
	in.TripType = domain.TripWork
	in.Travelers = append(in.Travelers, domain.Traveler{Name: "Kid", Type: domain.TravelerChild, Age: domain.AgeOf(8)})

	p, err := Build(in)
	require.NoError(t, err)

	assert.Contains(t, p.Packing.ByPerson["Ana"], "Laptop + charger")
	assert.Contains(t, p.Packing.MinimalByPerson["Ana"], "Professional outfit",
		"essential on a pure work trip")
	assert.Contains(t, p.Packing.ByPerson["Ana"], "Business-card holder")
	assert.NotContains(t, p.Packing.ByPerson["Kid"], "Laptop + charger")

	var t1 []string
	for _, e := range p.Timeline {
		if e.Day == "T-1" {
			t1 = e.Tasks
		}
	}
	assert.Contains(t, t1, "Set out-of-office reply")
	assert.Contains(t, p.Overpack.LastMinute, "Work badge")
}

func TestBuild_MixedTripSoftensWorkRules(t *testing.T) {
	in := baseTrip()
	in.TripType = domain.TripBoth

	p, err := Build(in)
	require.NoError(t, err)

	assert.Contains(t, p.Packing.ByPerson["Ana"], "Professional outfit")
	assert.NotContains(t, p.Packing.MinimalByPerson["Ana"], "Professional outfit",
		"essential only when the trip is purely work")
	assert.NotContains(t, p.Packing.ByPerson["Ana"], "Business-card holder")
}

func TestBuild_OutdoorActivityAddsSunProtection(t *testing.T) {
	in := baseTrip()
	in.Activities = []domain.Activity{domain.ActivityFishing}

	p, err := Build(in)
	require.NoError(t, err)
	assert.Contains(t, p.Packing.Combined, "Sunscreen")
	assert.Contains(t, p.Packing.MinimalCombined, "Sunscreen")

	in.Activities = []domain.Activity{domain.ActivityFancyDinner}
	p, err = Build(in)
	require.NoError(t, err)
	assert.NotContains(t, p.Packing.Combined, "Sunscreen", "indoor-only trips skip sun protection")
}

func TestBuild_TransportationRules(t *testing.T) {
	in := baseTrip()
	in.Transportation = "Subway and train"
	p, err := Build(in)
	require.NoError(t, err)
	assert.Contains(t, p.Packing.Combined, "Transit card/app set up")

	in.Transportation = ""
	in.Modes = []domain.TravelMode{domain.ModeDrive}
	p, err = Build(in)
	require.NoError(t, err)
	assert.Contains(t, p.Packing.Combined, "Car snacks", "drive mode implies traveling by car")
}

func TestBuild_VenueActivityChecksBagPolicy(t *testing.T) {
	in := baseTrip()
	in.Activities = []domain.Activity{domain.ActivityConcertShow}

	p, err := Build(in)
	require.NoError(t, err)

	var t3 []string
	for _, e := range p.Timeline {
		if e.Day == "T-3" {
			t3 = e.Tasks
		}
	}
	assert.Contains(t, t3, "Check venue bag policy")
	assert.Equal(t, []string{"Concert / Show"}, p.Activities)
}

func TestBuild_EssentialUpgradeIsMonotonic(t *testing.T) {
	// Pool adds a plain swimsuit entry; beach adds the same label as
	// essential. Order must not matter for the final flag.
	for _, activities := range [][]domain.Activity{
		{domain.ActivityPool, domain.ActivityBeach},
		{domain.ActivityBeach, domain.ActivityPool},
	} {
		in := baseTrip()
		in.Activities = activities
		p, err := Build(in)
		require.NoError(t, err)
		assert.Contains(t, p.Packing.MinimalCombined, "Swimsuit", "activities %v", activities)
	}
}
