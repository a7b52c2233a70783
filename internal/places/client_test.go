package places

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nominatimBody = `[
	{"display_name":"Portland, Multnomah County, Oregon, United States","lat":"45.52","lon":"-122.67","type":"city"},
	{"display_name":"Portland, Cumberland County, Maine, United States","lat":"43.66","lon":"-70.25","type":"city"},
	{"display_name":"Portland, Victoria, Australia","lat":"-38.34","lon":"141.60","type":"town"},
	{"display_name":"Portland, Jamaica","lat":"18.08","lon":"-76.53","type":"county"},
	{"display_name":"Portland Parish, Jamaica","lat":"18.1","lon":"-76.5","type":"county"},
	{"display_name":"Portland, Ionia County, Michigan, United States","lat":"42.86","lon":"-84.90","type":"city"},
	{"display_name":"Portland, Callahan County, Texas, United States","lat":"27.87","lon":"-97.32","type":"city"}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL))
}

func TestSuggest_CompressesAndCaps(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Portland", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, nominatimBody)
	})

	got, err := client.Suggest(context.Background(), "Portland")
	require.NoError(t, err)

	require.Len(t, got, 5, "capped at five suggestions")
	assert.Equal(t, "Portland, Oregon, United States", got[0].Label)
	assert.Equal(t, "Portland, Maine, United States", got[1].Label)
	assert.Equal(t, "Portland, Victoria, Australia", got[2].Label)
	assert.Equal(t, "Portland, Jamaica", got[3].Label, "short names pass through untouched")
	assert.Equal(t, "45.52", got[0].Lat)
}

func TestSuggest_ShortQuerySkipsLookup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no lookup expected for a one-character query")
	})

	got, err := client.Suggest(context.Background(), " P ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSuggest_CachesByQuery(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, nominatimBody)
	})

	_, err := client.Suggest(context.Background(), "Portland")
	require.NoError(t, err)
	_, err = client.Suggest(context.Background(), "portland")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load(), "case-insensitive cache hit on the second call")
}

func TestSuggest_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Suggest(context.Background(), "Portland")
	assert.Error(t, err)
}

func TestHotelNameVariants(t *testing.T) {
	got := HotelNameVariants("Grand Pacific")
	assert.Equal(t, []string{
		"Grand Pacific",
		"Grand Pacific Hotel",
		"Grand Pacific Inn",
		"Grand Pacific Resort",
		"Grand Pacific Suites",
		"Grand Pacific Lodge",
	}, got)
}

func TestHotelNameVariants_SkipsPresentSuffix(t *testing.T) {
	got := HotelNameVariants("Seaside Inn")
	assert.NotContains(t, got, "Seaside Inn Inn")
	assert.Contains(t, got, "Seaside Inn")
	assert.Contains(t, got, "Seaside Inn Hotel")
}

func TestHotelNameVariants_Blank(t *testing.T) {
	assert.Nil(t, HotelNameVariants("   "))
}
