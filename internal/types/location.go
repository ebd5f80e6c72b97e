package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Place is a resolved birthplace
type Place struct {
	Coordinates Coords       `json:"coordinates"`
	Location    LocationInfo `json:"location"`
}
