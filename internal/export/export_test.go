package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/fulfilled/tripprep/internal/plan"
)

func exportPlan(t *testing.T) *plan.Plan {
	t.Helper()
	p, err := plan.Build(domain.TripInput{
		Destination:   "Lisbon",
		StartDate:     "2026-09-10",
		EndDate:       "2026-09-14",
		Modes:         []domain.TravelMode{domain.ModeFly},
		Accommodation: domain.StayHotel,
		Travelers: []domain.Traveler{
			{Name: "Ana", Type: domain.TravelerAdult},
			{Name: "Rui", Type: domain.TravelerAdult},
		},
	})
	require.NoError(t, err)
	return p
}

func TestDayOffset(t *testing.T) {
	cases := []struct {
		day    string
		offset int
		ok     bool
	}{
		{"Day of", 0, true},
		{"T-1", 1, true},
		{"T-14", 14, true},
		{"After arrival", 0, false},
		{"T-x", 0, false},
		{"T-0", 0, false},
	}
	for _, tc := range cases {
		offset, ok := dayOffset(tc.day)
		assert.Equal(t, tc.ok, ok, tc.day)
		assert.Equal(t, tc.offset, offset, tc.day)
	}
}

func TestICS_OneEventPerDatedBucket(t *testing.T) {
	p := exportPlan(t)
	out, err := ICS(p)
	require.NoError(t, err)

	assert.Equal(t, len(p.Timeline), strings.Count(out, "BEGIN:VEVENT"),
		"every canonical bucket becomes one all-day event")
	assert.Contains(t, out, "SUMMARY:T-14 - Trip prep for Lisbon")
	// T-14 before a 2026-09-10 start lands on 2026-08-27.
	assert.Contains(t, out, "20260827")
	assert.Contains(t, out, "METHOD:PUBLISH")
}

func TestICS_SkipsFreeFormDays(t *testing.T) {
	p := exportPlan(t)
	withExtra := plan.MergeSuggestions(p, domain.AISuggestions{
		TimelineAdditions: []domain.TimelineAddition{
			{Day: "After arrival", Tasks: domain.TaskList{"Grocery run"}},
		},
	})

	out, err := ICS(withExtra)
	require.NoError(t, err)
	assert.Equal(t, len(p.Timeline), strings.Count(out, "BEGIN:VEVENT"),
		"the undated bucket is not exported")
	assert.NotContains(t, out, "After arrival")
}

func TestICS_BadStartDate(t *testing.T) {
	p := exportPlan(t)
	p.Basics.Dates.Start = "not-a-date"
	_, err := ICS(p)
	assert.Error(t, err)
}

func TestCSV_RowsPerTaskAndMustHave(t *testing.T) {
	p := exportPlan(t)
	p.SmartMustHaves = []string{"Passports", "Chargers"}

	out, err := CSV(p)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	taskCount := 0
	for _, e := range p.Timeline {
		taskCount += len(e.Tasks)
	}
	require.Len(t, rows, 1+taskCount+2, "header, one row per task, one per must-have")
	assert.Equal(t, []string{"Task", "Notes", "Due Date"}, rows[0])

	assert.Equal(t, "Start the shared packing list", rows[1][0])
	assert.Equal(t, "2026-08-27", rows[1][2], "T-14 resolves to 14 days before the start")

	last := rows[len(rows)-1]
	assert.Equal(t, "Pack: Chargers", last[0])
	assert.Equal(t, "Must-have", last[1])
	assert.Equal(t, "2026-09-10", last[2])
}
