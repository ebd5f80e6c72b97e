package openstreetmap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmicmatch/internal/config"
)

const searchLondon = `[{
	"place_id": 258357674,
	"osm_type": "relation",
	"osm_id": 65606,
	"lat": "51.5074456",
	"lon": "-0.1277653",
	"name": "London",
	"display_name": "London, Greater London, England, United Kingdom",
	"address": {"city": "London", "state": "England", "country": "United Kingdom", "country_code": "gb"}
}]`

const reverseAspen = `{
	"place_id": 1,
	"lat": "39.1911",
	"lon": "-106.8175",
	"name": "Aspen",
	"display_name": "Aspen, Pitkin County, Colorado, United States",
	"address": {"town": "Aspen", "county": "Pitkin County", "state": "Colorado", "country": "United States", "country_code": "us"}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(config.GeocoderConfig{BaseURL: server.URL, UserAgent: "cosmicmatch-test"}, logger)
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "cosmicmatch-test", r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, searchLondon)
	})

	place, err := client.Search(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", place.Name)
	assert.Equal(t, "London", place.Address.Locality())
	assert.Equal(t, "gb", place.Address.CountryCode)

	lat, lon, err := place.Coordinates()
	require.NoError(t, err)
	assert.InDelta(t, 51.5074456, lat, 1e-9)
	assert.InDelta(t, -0.1277653, lon, 1e-9)
}

func TestClient_Search_NoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	_, err := client.Search(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestClient_Search_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), "London")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.NotErrorIs(t, err, ErrNoResults)
}

func TestClient_Lookup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "39.191100", r.URL.Query().Get("lat"))
		assert.Equal(t, "-106.817500", r.URL.Query().Get("lon"))
		_, _ = io.WriteString(w, reverseAspen)
	})

	place, err := client.Lookup(context.Background(), 39.1911, -106.8175)
	require.NoError(t, err)

	assert.Equal(t, "Aspen", place.Name)
	assert.Equal(t, "Aspen", place.Address.Locality())
	assert.Equal(t, "Colorado", place.Address.State)
}

func TestClient_Lookup_Unable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":"Unable to geocode"}`)
	})

	_, err := client.Lookup(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestClient_Search_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, searchLondon)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "London")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(config.GeocoderConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultUserAgent, client.userAgent)
}

func TestPlaceAPIResponse_Coordinates_Invalid(t *testing.T) {
	p := &PlaceAPIResponse{Lat: "north", Lon: "0"}
	_, _, err := p.Coordinates()
	assert.Error(t, err)
}
