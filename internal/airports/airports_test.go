package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_ByIATACode(t *testing.T) {
	got := Search("sea")
	require.NotEmpty(t, got)
	assert.Equal(t, "SEA", got[0].IATA, "code match surfaces before name matches")
}

func TestSearch_ByCity(t *testing.T) {
	got := Search("new york")
	require.Len(t, got, 2)
	assert.Equal(t, "JFK", got[0].IATA)
	assert.Equal(t, "LGA", got[1].IATA)
}

func TestSearch_ByStateAndCountry(t *testing.T) {
	fl := Search("FL")
	require.NotEmpty(t, fl)
	for _, a := range fl {
		assert.True(t, a.State == "FL" || containsFold(a, "fl"), "%s matched %q", a.IATA, "FL")
	}

	japan := Search("Japan")
	require.Len(t, japan, 2)
	assert.Equal(t, "HND", japan[0].IATA)
}

func TestSearch_CapsAtTen(t *testing.T) {
	got := Search("united states")
	assert.Len(t, got, 10)
}

func TestSearch_Blank(t *testing.T) {
	assert.Nil(t, Search("   "))
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Search("zzzzzz"))
}

func TestLabel(t *testing.T) {
	a := Airport{IATA: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", State: "WA", Country: "United States"}
	assert.Equal(t, "SEA - Seattle-Tacoma International (Seattle, WA)", a.Label())

	intl := Airport{IATA: "LIS", Name: "Humberto Delgado", City: "Lisbon", Country: "Portugal"}
	assert.Equal(t, "LIS - Humberto Delgado (Lisbon, Portugal)", intl.Label())
}

func containsFold(a Airport, q string) bool {
	return a.matches(q)
}
