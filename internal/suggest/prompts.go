package suggest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/fulfilled/tripprep/internal/plan"
)

// suggestSystemPrompt instructs the model to enrich a rule-based trip
// plan with a fixed-shape JSON payload.
const suggestSystemPrompt = `You are a trip-preparation assistant. You will receive a JSON summary of a trip and the checklist already generated for it. Suggest additions the checklist is missing.

You must output ONLY a JSON object with these exact fields:
- trip_blurb: one warm, specific sentence about this trip (string)
- venue_bag_policy_tips: bag/security tips for any ticketed venue on the trip (array of strings, empty if none)
- extra_to_dos: preparation tasks not already on the timeline (array of strings)
- packing_additions: destination-specific items not already on the packing list (array of strings)
- overpack_additions: { "skip": [...], "lastMinute": [...], "housePrep": [...] }
- timeline_additions: array of { "day": "T-14"|"T-7"|"T-3"|"T-1"|"Day of", "tasks": [...] }
- smart_must_haves: the absolute must-pack items for this specific trip (array of strings, max 30)

RULES:
1. Never repeat an item or task that already appears in the provided checklist.
2. Keep every suggestion short: a label, not a paragraph.
3. Use the canonical day labels exactly as written above.
4. Output ONLY the JSON object, no markdown, no explanation.`

// hotelNamesSystemPrompt asks for plausible full names of a partially
// typed hotel.
const hotelNamesSystemPrompt = `You complete partially typed hotel names. Given a fragment and a destination, output ONLY a JSON object:
{ "variants": ["Full Hotel Name", ...] }
List real, likely matches first. At most 6 variants, no commentary.`

// tripDigest is the compact trip summary embedded in the user prompt.
type tripDigest struct {
	Destination   string   `json:"destination"`
	Dates         string   `json:"dates"`
	Modes         []string `json:"modes"`
	TripType      string   `json:"trip_type"`
	Accommodation string   `json:"accommodation,omitempty"`
	Travelers     []string `json:"travelers"`
	Activities    []string `json:"activities,omitempty"`
	Weather       string   `json:"weather,omitempty"`
	Venue         string   `json:"venue,omitempty"`
}

func buildSuggestUserPrompt(in domain.TripInput, p *plan.Plan) string {
	digest := tripDigest{
		Destination:   in.Destination,
		Dates:         in.StartDate + " to " + in.EndDate,
		TripType:      string(in.TripType),
		Accommodation: string(in.Accommodation),
	}
	for _, m := range in.Modes {
		digest.Modes = append(digest.Modes, string(m))
	}
	for _, t := range in.Travelers {
		label := t.Name
		if label == "" {
			label = string(t.Type)
		}
		if t.Type == domain.TravelerChild && t.Age.Known {
			label = fmt.Sprintf("%s (child, age %d)", label, t.Age.Years)
		}
		digest.Travelers = append(digest.Travelers, label)
	}
	for _, a := range in.Activities {
		digest.Activities = append(digest.Activities, a.Label())
	}
	if in.Weather != nil && in.Weather.Notes != "" {
		digest.Weather = in.Weather.Notes
	}
	if in.Venue != nil && in.Venue.Name != "" {
		digest.Venue = in.Venue.Name
		if in.Venue.City != "" {
			digest.Venue += ", " + in.Venue.City
		}
	}

	tripJSON, _ := json.Marshal(digest)

	var b strings.Builder
	b.WriteString("Trip:\n")
	b.Write(tripJSON)
	b.WriteString("\n\nCurrent packing list:\n")
	for _, item := range p.Packing.Combined {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\nCurrent timeline:\n")
	for _, e := range p.Timeline {
		b.WriteString(e.Day + ": " + strings.Join(e.Tasks, "; ") + "\n")
	}
	return b.String()
}

func buildHotelNamesUserPrompt(partial, destination string) string {
	return fmt.Sprintf("Fragment: %q\nDestination: %q", partial, destination)
}
