package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org/search"

	requestTimeout = 8 * time.Second
	cacheTTL       = 10 * time.Minute
	maxResults     = 5
	minQueryLen    = 2
)

// Suggestion is one destination autosuggest entry.
type Suggestion struct {
	Label string `json:"label"`
	Lat   string `json:"lat"`
	Lon   string `json:"lon"`
}

// Client suggests destinations via the Nominatim search API. Lookups are
// cached for 10 minutes since users retype the same prefixes while
// filling the form.
type Client struct {
	http    *http.Client
	cache   *gocache.Cache
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a places client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: requestTimeout},
		cache:   gocache.New(cacheTTL, 5*time.Minute),
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
}

// Suggest returns up to five destination suggestions for the query.
// Queries shorter than two characters return nothing without a lookup.
func (c *Client) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLen {
		return nil, nil
	}

	key := strings.ToLower(query)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]Suggestion), nil
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("addressdetails", "0")
	q.Set("limit", "10")

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "tripprep/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	suggestions := lo.UniqBy(lo.Map(results, func(r nominatimResult, _ int) Suggestion {
		return Suggestion{Label: compressLabel(r.DisplayName), Lat: r.Lat, Lon: r.Lon}
	}), func(s Suggestion) string { return s.Label })
	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	c.cache.Set(key, suggestions, gocache.DefaultExpiration)
	return suggestions, nil
}

// compressLabel shortens Nominatim's verbose display_name
// ("Portland, Multnomah County, Oregon, United States") to
// "City, Region, Country".
func compressLabel(displayName string) string {
	parts := lo.FilterMap(strings.Split(displayName, ","), func(p string, _ int) (string, bool) {
		p = strings.TrimSpace(p)
		return p, p != ""
	})
	if len(parts) <= 3 {
		return strings.Join(parts, ", ")
	}
	return strings.Join([]string{parts[0], parts[len(parts)-2], parts[len(parts)-1]}, ", ")
}
