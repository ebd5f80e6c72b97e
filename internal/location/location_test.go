package location

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cosmicmatch/internal/providers/openstreetmap"
	"cosmicmatch/internal/types"
)

// Mock providers for testing

type mockGeocodeProvider struct {
	searchResponse *openstreetmap.PlaceAPIResponse
	searchErr      error
	lookupResponse *openstreetmap.PlaceAPIResponse
	lookupErr      error
	lastQuery      string
}

func (m *mockGeocodeProvider) Search(ctx context.Context, query string) (*openstreetmap.PlaceAPIResponse, error) {
	m.lastQuery = query
	return m.searchResponse, m.searchErr
}

func (m *mockGeocodeProvider) Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.PlaceAPIResponse, error) {
	return m.lookupResponse, m.lookupErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocationService_ResolvePlace(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		response    *openstreetmap.PlaceAPIResponse
		providerErr error
		wantErr     error
		errContains string
		validate    func(*testing.T, *types.Place)
	}{
		{
			name:  "successful lookup",
			query: "  Paris, France ",
			response: &openstreetmap.PlaceAPIResponse{
				Lat:         "48.8588897",
				Lon:         "2.3200410",
				Name:        "Paris",
				DisplayName: "Paris, Île-de-France, France métropolitaine, France",
				Address: openstreetmap.Address{
					City:        "Paris",
					State:       "Île-de-France",
					Country:     "France",
					CountryCode: "fr",
				},
			},
			validate: func(t *testing.T, p *types.Place) {
				if p.Coordinates.Latitude != 48.8588897 {
					t.Errorf("Latitude = %v, want %v", p.Coordinates.Latitude, 48.8588897)
				}
				if p.Coordinates.Longitude != 2.3200410 {
					t.Errorf("Longitude = %v, want %v", p.Coordinates.Longitude, 2.3200410)
				}
				if p.Location.Name != "Paris" {
					t.Errorf("Location.Name = %v, want %v", p.Location.Name, "Paris")
				}
				if p.Location.CountryCode != "fr" {
					t.Errorf("Location.CountryCode = %v, want %v", p.Location.CountryCode, "fr")
				}
			},
		},
		{
			name:  "falls back to display name",
			query: "Mid-Atlantic Ridge",
			response: &openstreetmap.PlaceAPIResponse{
				Lat:         "0.0",
				Lon:         "-30.0",
				DisplayName: "Mid-Atlantic Ridge",
			},
			validate: func(t *testing.T, p *types.Place) {
				if p.Location.Name != "Mid-Atlantic Ridge" {
					t.Errorf("Location.Name = %v, want %v", p.Location.Name, "Mid-Atlantic Ridge")
				}
			},
		},
		{
			name:    "blank query",
			query:   "   ",
			wantErr: ErrPlaceNotFound,
		},
		{
			name:        "no results",
			query:       "Atlantis",
			providerErr: fmt.Errorf("%w: %q", openstreetmap.ErrNoResults, "Atlantis"),
			wantErr:     ErrPlaceNotFound,
		},
		{
			name:        "provider error",
			query:       "London",
			providerErr: errors.New("fetch returned status 503"),
			errContains: "failed to geocode",
		},
		{
			name:        "unparsable coordinates",
			query:       "London",
			response:    &openstreetmap.PlaceAPIResponse{Lat: "", Lon: "0"},
			errContains: "invalid latitude",
		},
		{
			name:     "out of range coordinates",
			query:    "Nowhere",
			response: &openstreetmap.PlaceAPIResponse{Lat: "95", Lon: "0"},
			wantErr:  types.ErrInvalidLatitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockGeocodeProvider{
				searchResponse: tt.response,
				searchErr:      tt.providerErr,
			}
			service := NewLocationServiceWithProviders(provider, discardLogger())

			got, err := service.ResolvePlace(context.Background(), tt.query)

			if tt.wantErr != nil || tt.errContains != "" {
				if err == nil {
					t.Fatalf("ResolvePlace() expected error but got none")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolvePlace() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ResolvePlace() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("ResolvePlace() unexpected error = %v", err)
			}
			if provider.lastQuery != strings.TrimSpace(tt.query) {
				t.Errorf("provider query = %q, want %q", provider.lastQuery, strings.TrimSpace(tt.query))
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestLocationService_DescribeCoords(t *testing.T) {
	tests := []struct {
		name     string
		lat      float64
		lon      float64
		response *openstreetmap.PlaceAPIResponse
		lookErr  error
		wantErr  error
		wantName string
	}{
		{
			name: "named place",
			lat:  39.1911,
			lon:  -106.8175,
			response: &openstreetmap.PlaceAPIResponse{
				DisplayName: "Aspen, Pitkin County, Colorado, United States",
				Address:     openstreetmap.Address{Town: "Aspen", State: "Colorado"},
			},
			wantName: "Aspen",
		},
		{
			name:     "lookup failure keeps coordinates",
			lat:      0,
			lon:      0,
			lookErr:  openstreetmap.ErrNoResults,
			wantName: "0.0000°N, 0.0000°E",
		},
		{
			name:    "invalid longitude",
			lat:     10,
			lon:     200,
			wantErr: types.ErrInvalidLongitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockGeocodeProvider{lookupResponse: tt.response, lookupErr: tt.lookErr}
			service := NewLocationServiceWithProviders(provider, discardLogger())

			got, err := service.DescribeCoords(context.Background(), tt.lat, tt.lon)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DescribeCoords() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DescribeCoords() unexpected error = %v", err)
			}
			if got.Coordinates != types.NewCoords(tt.lat, tt.lon) {
				t.Errorf("Coordinates = %v, want %v", got.Coordinates, types.NewCoords(tt.lat, tt.lon))
			}
			if got.Location.Name != tt.wantName {
				t.Errorf("Location.Name = %q, want %q", got.Location.Name, tt.wantName)
			}
		})
	}
}
