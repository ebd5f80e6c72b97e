package openstreetmap

import (
	"fmt"
	"strconv"
)

// PlaceAPIResponse is a single Nominatim place as returned by both /search
// (as an array element) and /reverse, with addressdetails enabled.
type PlaceAPIResponse struct {
	PlaceId     int      `json:"place_id"`
	Licence     string   `json:"licence"`
	OsmType     string   `json:"osm_type"`
	OsmId       int      `json:"osm_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	PlaceRank   int      `json:"place_rank"`
	Importance  float64  `json:"importance"`
	Addresstype string   `json:"addresstype"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Address     Address  `json:"address"`
	Boundingbox []string `json:"boundingbox"`
}

// Address is the subset of Nominatim address details we use
type Address struct {
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	County      string `json:"county"`
	State       string `json:"state"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// Locality returns the most specific settlement name in the address
func (a Address) Locality() string {
	switch {
	case a.City != "":
		return a.City
	case a.Town != "":
		return a.Town
	default:
		return a.Village
	}
}

// Coordinates parses the string-encoded lat/lon pair
func (p *PlaceAPIResponse) Coordinates() (float64, float64, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", p.Lon, err)
	}
	return lat, lon, nil
}

// reverseErrorResponse is returned by /reverse with a 200 status when
// nothing is found at the coordinates
type reverseErrorResponse struct {
	Error string `json:"error"`
}
