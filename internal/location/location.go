package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cosmicmatch/internal/config"
	"cosmicmatch/internal/providers/openstreetmap"
	"cosmicmatch/internal/types"
)

// ErrPlaceNotFound is returned when a birthplace cannot be geocoded
var ErrPlaceNotFound = errors.New("place not found")

// Service resolves birthplaces to coordinates and back
type Service interface {
	// ResolvePlace geocodes a free-text place name
	ResolvePlace(ctx context.Context, query string) (*types.Place, error)
	// DescribeCoords names a coordinate pair. Lookup failures are not fatal:
	// the returned place always carries the coordinates.
	DescribeCoords(ctx context.Context, latitude, longitude float64) (*types.Place, error)
}

// GeocodeProvider defines the interface for forward and reverse geocoders
type GeocodeProvider interface {
	Search(ctx context.Context, query string) (*openstreetmap.PlaceAPIResponse, error)
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.PlaceAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocoder GeocodeProvider
	logger   *slog.Logger
}

// NewLocationService creates a new location service backed by Nominatim
func NewLocationService(cfg config.GeocoderConfig, logger *slog.Logger) Service {
	return &locationService{
		geocoder: openstreetmap.NewClient(cfg, logger),
		logger:   logger.With("component", "location-service"),
	}
}

// NewLocationServiceWithProviders creates a new location service with a custom geocoder
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(geocoder GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocoder: geocoder,
		logger:   logger.With("component", "location-service"),
	}
}

func (s *locationService) ResolvePlace(ctx context.Context, query string) (*types.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty place name", ErrPlaceNotFound)
	}

	resp, err := s.geocoder.Search(ctx, query)
	if err != nil {
		if errors.Is(err, openstreetmap.ErrNoResults) {
			return nil, fmt.Errorf("%w: %q", ErrPlaceNotFound, query)
		}
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	lat, lon, err := resp.Coordinates()
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}
	coords := types.NewCoords(lat, lon)
	if err := coords.Validate(); err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	place := &types.Place{
		Coordinates: coords,
		Location:    translateLocationInfo(resp),
	}

	s.logger.Info("resolved place",
		"query", query,
		"latitude", lat,
		"longitude", lon,
		"display_name", place.Location.DisplayName,
	)

	return place, nil
}

func (s *locationService) DescribeCoords(ctx context.Context, latitude, longitude float64) (*types.Place, error) {
	coords := types.NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	place := &types.Place{Coordinates: coords}

	resp, err := s.geocoder.Lookup(ctx, latitude, longitude)
	if err != nil {
		s.logger.Warn("reverse lookup failed, continuing without a place name",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		place.Location.Name = coords.String()
		return place, nil
	}

	place.Location = translateLocationInfo(resp)
	return place, nil
}

// translateLocationInfo converts a Nominatim place to domain LocationInfo type
func translateLocationInfo(resp *openstreetmap.PlaceAPIResponse) types.LocationInfo {
	name := resp.Address.Locality()
	if name == "" {
		name = resp.Name
	}
	if name == "" {
		name = resp.DisplayName
	}

	return types.LocationInfo{
		Name:        name,
		DisplayName: resp.DisplayName,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}
}
