package ephemeris

import (
	"encoding/json"
	"fmt"
	"time"
)

// Result is the chart computed for one birth instant and place.
// All angles are ecliptic longitudes in degrees, normalized to [0, 360).
type Result struct {
	Timezone    string      `json:"timezone"`
	UTC         time.Time   `json:"utc"`
	JulianDay   float64     `json:"julian_day"`
	Ascendant   float64     `json:"ascendant"`
	HouseSystem HouseSystem `json:"house_system"`
	HouseCusps  [12]float64 `json:"house_cusps"`
	Planets     Longitudes  `json:"planets"`
}

// Longitudes holds one ecliptic longitude per chart body, indexed by Body
type Longitudes [NumBodies]float64

// Of returns the longitude of b
func (l Longitudes) Of(b Body) float64 {
	return l[b]
}

// Map returns the longitudes keyed by body name
func (l Longitudes) Map() map[string]float64 {
	m := make(map[string]float64, NumBodies)
	for i, lon := range l {
		m[Body(i).String()] = lon
	}
	return m
}

// MarshalJSON encodes the longitudes as an object keyed by body name
func (l Longitudes) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Map())
}

// UnmarshalJSON requires exactly the ten chart bodies
func (l *Longitudes) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != NumBodies {
		return fmt.Errorf("expected %d bodies, got %d", NumBodies, len(m))
	}
	for name, lon := range m {
		b, err := ParseBody(name)
		if err != nil {
			return err
		}
		l[b] = lon
	}
	return nil
}

// Placement returns the sign placement of body b
func (r *Result) Placement(b Body) Placement {
	return PlacementOf(r.Planets.Of(b))
}

// House returns the house (1-12) body b falls in
func (r *Result) House(b Body) int {
	return HouseOf(r.Planets.Of(b), r.HouseCusps)
}
