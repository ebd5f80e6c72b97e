package ephemeris

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata" // zone rules must not depend on the host's zoneinfo
)

var (
	// ErrInvalidTimestamp is returned when the local date and time do not
	// form a valid calendar timestamp
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrEphemerisComputation is returned when the astronomical calculation
	// itself fails
	ErrEphemerisComputation = errors.New("ephemeris computation failed")
)

// DefaultTimezone is used when no zone can be determined for a coordinate
const DefaultTimezone = "UTC"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
	// time layout with seconds
	timeLayoutSeconds = "15:04:05"
)

// ZoneFinder resolves the IANA time zone governing a coordinate
type ZoneFinder interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// Resolver computes charts from a local birth date, time and place.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	zones  ZoneFinder
	logger *slog.Logger
}

// NewResolver creates a resolver using zones for time zone lookups.
// A nil finder resolves every coordinate to DefaultTimezone.
func NewResolver(zones ZoneFinder, logger *slog.Logger) *Resolver {
	return &Resolver{
		zones:  zones,
		logger: logger.With("component", "ephemeris-resolver"),
	}
}

// Compute resolves the time zone for the coordinates, converts the local
// date ("YYYY-MM-DD") and time ("HH:MM" or "HH:MM:SS") to UT, and computes
// body longitudes and Placidus houses for that instant.
func (r *Resolver) Compute(date, clock string, latitude, longitude float64) (*Result, error) {
	local, err := ParseLocal(date, clock)
	if err != nil {
		return nil, err
	}

	tz, loc := r.resolveZone(latitude, longitude)

	// Re-anchor the wall clock reading in the resolved zone
	instant := time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), 0, loc).UTC()

	result, err := ComputeAt(instant, latitude, longitude)
	if err != nil {
		r.logger.Error("failed to compute chart",
			"date", date,
			"time", clock,
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}
	result.Timezone = tz

	r.logger.Debug("computed chart",
		"timezone", tz,
		"utc", instant,
		"julian_day", result.JulianDay,
		"house_system", result.HouseSystem,
	)

	return result, nil
}

// resolveZone never fails: a lookup miss or an unknown zone name falls back
// to DefaultTimezone.
func (r *Resolver) resolveZone(latitude, longitude float64) (string, *time.Location) {
	if r.zones == nil {
		return DefaultTimezone, time.UTC
	}

	tz, err := r.zones.GetTimezone(latitude, longitude)
	if err != nil || tz == "" {
		r.logger.Debug("no timezone for coordinates, using default",
			"latitude", latitude,
			"longitude", longitude,
			"default", DefaultTimezone,
			"error", err,
		)
		return DefaultTimezone, time.UTC
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		r.logger.Warn("unknown timezone returned by lookup, using default",
			"timezone", tz,
			"default", DefaultTimezone,
			"error", err,
		)
		return DefaultTimezone, time.UTC
	}

	return tz, loc
}

// ParseLocal parses a local date and wall clock time. The returned time
// carries no meaningful zone; only its calendar fields are used.
func ParseLocal(date, clock string) (time.Time, error) {
	layout := timeLayout
	if len(clock) > len(timeLayout) {
		layout = timeLayoutSeconds
	}

	t, err := time.Parse(dateLayout+" "+layout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q: %v", ErrInvalidTimestamp, date, clock, err)
	}
	return t, nil
}

// ComputeAt computes a chart for an absolute instant. The returned result
// has no time zone set.
func ComputeAt(instant time.Time, latitude, longitude float64) (*Result, error) {
	if !finite(latitude, longitude) {
		return nil, fmt.Errorf("%w: non-finite coordinates", ErrEphemerisComputation)
	}

	utc := instant.UTC()
	jd := JulianDay(utc)
	if !inSupportedRange(jd) {
		return nil, fmt.Errorf("%w: julian day %.1f outside supported range [%.1f, %.1f)",
			ErrEphemerisComputation, jd, minJulianDay, maxJulianDay)
	}

	longitudes, err := bodyLongitudes(jd)
	if err != nil {
		return nil, err
	}

	angles, err := computeHouses(jd, latitude, longitude)
	if err != nil {
		return nil, err
	}

	return &Result{
		UTC:         utc,
		JulianDay:   jd,
		Ascendant:   angles.ascendant,
		HouseSystem: angles.system,
		HouseCusps:  angles.cusps,
		Planets:     Longitudes(longitudes),
	}, nil
}
