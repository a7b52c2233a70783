package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"github.com/fulfilled/tripprep/internal/domain"
)

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	requestTimeout = 10 * time.Second
	cacheTTL       = 30 * time.Minute

	wetNotesThresholdPct = 40.0
)

// ErrNoMatch indicates no geocoding candidate matched the destination.
var ErrNoMatch = errors.New("destination could not be geocoded")

// Client fetches a weather digest for a destination and date range from
// open-meteo. Results are cached per (destination, dates) for a short TTL
// since form edits re-trigger lookups.
type Client struct {
	http        *http.Client
	cache       *gocache.Cache
	geocodeURL  string
	forecastURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs points the client at alternate API endpoints. Tests use
// this to target a local server.
func WithBaseURLs(geocode, forecast string) Option {
	return func(c *Client) {
		c.geocodeURL = geocode
		c.forecastURL = forecast
	}
}

// NewClient creates a weather client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:        &http.Client{Timeout: requestTimeout},
		cache:       gocache.New(cacheTTL, 10*time.Minute),
		geocodeURL:  defaultGeocodeURL,
		forecastURL: defaultForecastURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Summary geocodes the destination and summarizes the daily forecast over
// the trip window. Callers treat any error as "no weather": the plan
// builds without it.
func (c *Client) Summary(ctx context.Context, destination, startDate, endDate string) (*domain.WeatherSummary, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, ErrNoMatch
	}
	if endDate == "" {
		endDate = startDate
	}

	cacheKey := destination + "|" + startDate + "|" + endDate
	if cached, ok := c.cache.Get(cacheKey); ok {
		summary := cached.(domain.WeatherSummary)
		return &summary, nil
	}

	loc, err := c.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	daily, err := c.forecast(ctx, loc, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := summarize(loc, daily)
	c.cache.Set(cacheKey, summary, gocache.DefaultExpiration)
	return &summary, nil
}

type location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Admin1    string  `json:"admin1"`
	Country   string  `json:"country"`
}

type geocodeResponse struct {
	Results []location `json:"results"`
}

// geocode resolves the destination trying progressively looser forms:
// the full string, the part before the first comma, and a
// punctuation-stripped variant. A "City, ST" region hint narrows the
// candidate choice when present.
func (c *Client) geocode(ctx context.Context, destination string) (*location, error) {
	city, hint := splitRegionHint(destination)

	attempts := lo.Uniq(lo.Filter([]string{
		destination,
		city,
		stripPunctuation(city),
	}, func(s string, _ int) bool { return strings.TrimSpace(s) != "" }))

	var lastErr error = ErrNoMatch
	for _, q := range attempts {
		results, err := c.geocodeQuery(ctx, q)
		if err != nil {
			lastErr = err
			continue
		}
		if len(results) == 0 {
			continue
		}
		if match := pickLocation(results, hint); match != nil {
			return match, nil
		}
	}
	return nil, lastErr
}

func (c *Client) geocodeQuery(ctx context.Context, name string) ([]location, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "5")
	q.Set("language", "en")
	q.Set("format", "json")

	var resp geocodeResponse
	if err := c.getJSON(ctx, c.geocodeURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// pickLocation prefers a candidate whose admin1 or country matches the
// region hint; with no hint (or no match), the first result wins.
func pickLocation(results []location, hint string) *location {
	if hint != "" {
		for i := range results {
			if matchesRegion(results[i], hint) {
				return &results[i]
			}
		}
	}
	if len(results) > 0 {
		return &results[0]
	}
	return nil
}

func matchesRegion(loc location, hint string) bool {
	hint = strings.ToLower(hint)
	admin := strings.ToLower(loc.Admin1)
	country := strings.ToLower(loc.Country)
	return strings.HasPrefix(admin, hint) || strings.HasPrefix(country, hint) ||
		abbreviates(hint, admin)
}

// abbreviates reports whether hint looks like a two-letter abbreviation
// of the region name ("NY" for "New York").
func abbreviates(hint, region string) bool {
	if len(hint) != 2 || region == "" {
		return false
	}
	words := strings.Fields(region)
	if len(words) >= 2 {
		return words[0][:1] == hint[:1] && words[1][:1] == hint[1:2]
	}
	return strings.HasPrefix(region, hint[:1]) && strings.Contains(region, hint[1:2])
}

func splitRegionHint(destination string) (city, hint string) {
	parts := strings.SplitN(destination, ",", 2)
	city = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		hint = strings.TrimSpace(parts[1])
	}
	return city, hint
}

func stripPunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

type dailyForecast struct {
	Daily struct {
		Time             []string  `json:"time"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

func (c *Client) forecast(ctx context.Context, loc *location, startDate, endDate string) (*dailyForecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", loc.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", loc.Longitude))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("timezone", "auto")
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var resp dailyForecast
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Daily.Time) == 0 || len(resp.Daily.TemperatureMax) == 0 || len(resp.Daily.TemperatureMin) == 0 {
		return nil, fmt.Errorf("forecast returned no days for %s to %s", startDate, endDate)
	}
	return &resp, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// summarize reduces the daily series to the digest the plan consumes:
// one-decimal averages, the share of days with any precipitation, and a
// short packing note.
func summarize(loc *location, f *dailyForecast) domain.WeatherSummary {
	avgHigh := round1(lo.Sum(f.Daily.TemperatureMax) / float64(len(f.Daily.TemperatureMax)))
	avgLow := round1(lo.Sum(f.Daily.TemperatureMin) / float64(len(f.Daily.TemperatureMin)))

	wetDays := lo.CountBy(f.Daily.PrecipitationSum, func(p float64) bool { return p > 0 })
	wetPct := round1(float64(wetDays) / float64(len(f.Daily.Time)) * 100)

	notes := "Mostly dry days expected."
	if wetPct >= wetNotesThresholdPct {
		notes = "Expect some wet weather during the trip. Pack rain gear."
	}

	matched := loc.Name
	if loc.Admin1 != "" {
		matched += ", " + loc.Admin1
	}
	if loc.Country != "" {
		matched += ", " + loc.Country
	}

	return domain.WeatherSummary{
		AvgHighF:        &avgHigh,
		AvgLowF:         &avgLow,
		WetDaysPct:      &wetPct,
		Notes:           notes,
		MatchedLocation: matched,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
