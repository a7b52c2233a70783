package airports

import (
	"strings"

	"github.com/samber/lo"
)

const maxResults = 10

// Airport is one entry in the embedded catalog.
type Airport struct {
	IATA    string `json:"iata"`
	ICAO    string `json:"icao"`
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Country string `json:"country"`
}

// Label renders the airport for display, e.g.
// "SEA - Seattle-Tacoma International (Seattle, WA)".
func (a Airport) Label() string {
	region := a.State
	if region == "" {
		region = a.Country
	}
	return a.IATA + " - " + a.Name + " (" + a.City + ", " + region + ")"
}

// Search returns up to ten airports whose code, name, or location
// contains the query, case-insensitively. Catalog order is preserved, so
// larger airports surface first.
func Search(query string) []Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	matches := lo.Filter(catalog, func(a Airport, _ int) bool {
		return a.matches(query)
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

func (a Airport) matches(query string) bool {
	for _, field := range []string{a.IATA, a.ICAO, a.Name, a.City, a.State, a.Country} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
