package types

import "strings"

// BirthDetails is what a person tells us about their birth. Either a place
// name or both coordinates must be supplied.
type BirthDetails struct {
	Name      string   `json:"name"`
	Date      string   `json:"birth_date"`
	Time      string   `json:"birth_time"`
	Place     string   `json:"birth_place,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoords reports whether both coordinates were supplied
func (b BirthDetails) HasCoords() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// Coords returns the supplied coordinates; callers check HasCoords first
func (b BirthDetails) Coords() Coords {
	return NewCoords(*b.Latitude, *b.Longitude)
}

// DisplayName returns the person's name, or fallback if none was given
func (b BirthDetails) DisplayName(fallback string) string {
	if name := strings.TrimSpace(b.Name); name != "" {
		return name
	}
	return fallback
}
