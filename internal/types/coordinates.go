package types

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks that the coordinates are finite and within WGS84 bounds
func (c Coords) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: got %v", ErrInvalidLongitude, c.Longitude)
	}
	return nil
}

// String formats the coordinates as "51.5074°N, 0.1278°W"
func (c Coords) String() string {
	ns, ew := "N", "E"
	lat, lon := c.Latitude, c.Longitude
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lon < 0 {
		ew, lon = "W", -lon
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", lat, ns, lon, ew)
}
