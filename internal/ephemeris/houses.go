package ephemeris

import (
	"fmt"
	"math"
)

// HouseSystem names the method used to divide the chart into twelve houses
type HouseSystem string

const (
	Placidus HouseSystem = "placidus"
	// Porphyry is used when Placidus is undefined, inside the polar circles
	Porphyry HouseSystem = "porphyry"
)

const (
	placidusTolerance     = 1e-10
	maxPlacidusIterations = 100
)

// chartAngles holds the result of a house computation
type chartAngles struct {
	ascendant float64
	midheaven float64
	cusps     [12]float64
	system    HouseSystem
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees at t
// Julian centuries from J2000 (IAU 1980).
func meanObliquity(t float64) float64 {
	return 23.439291111 - 0.0130041667*t - 1.6389e-7*t*t + 5.0361e-7*t*t*t
}

// greenwichSiderealDegrees returns Greenwich mean sidereal time as an angle
// in [0, 360).
func greenwichSiderealDegrees(jd float64) float64 {
	t := centuriesSinceJ2000(jd)
	gmst := 280.46061837 + 360.98564736629*(jd-J2000) + 0.000387933*t*t - t*t*t/38710000
	return normalizeDegrees(gmst)
}

// midheaven returns the ecliptic longitude culminating at the given sidereal angle
func midheaven(armc, eps float64) float64 {
	return normalizeDegrees(atan2Deg(sinDeg(armc), cosDeg(armc)*cosDeg(eps)))
}

// ascendant returns the ecliptic longitude rising on the eastern horizon
func ascendant(armc, eps, lat float64) float64 {
	return normalizeDegrees(atan2Deg(cosDeg(armc), -(sinDeg(armc)*cosDeg(eps) + tanDeg(lat)*sinDeg(eps))))
}

// computeHouses returns the ascendant, midheaven and twelve cusps for the
// given Julian day (UT) and geographic position. Cusp order is 1 through 12.
func computeHouses(jd, lat, lon float64) (chartAngles, error) {
	t := centuriesSinceJ2000(jd)
	eps := meanObliquity(t)
	armc := normalizeDegrees(greenwichSiderealDegrees(jd) + lon)

	angles := chartAngles{
		ascendant: ascendant(armc, eps, lat),
		midheaven: midheaven(armc, eps),
	}
	if !finite(angles.ascendant, angles.midheaven) {
		return chartAngles{}, fmt.Errorf("%w: non-finite chart angles (lat=%f, lon=%f)", ErrEphemerisComputation, lat, lon)
	}

	if math.Abs(lat) < 90-eps {
		if cusps, ok := placidusCusps(armc, eps, lat, angles.ascendant, angles.midheaven); ok {
			angles.cusps = cusps
			angles.system = Placidus
			return angles, nil
		}
	}

	angles.cusps = porphyryCusps(angles.ascendant, angles.midheaven)
	angles.system = Porphyry
	return angles, nil
}

// placidusCusps trisects the diurnal and nocturnal semi-arcs of each
// intermediate cusp. ok is false when a cusp's semi-arc is undefined.
func placidusCusps(armc, eps, lat, asc, mc float64) ([12]float64, bool) {
	var cusps [12]float64

	intermediate := []struct {
		index    int
		fraction float64
		below    bool
	}{
		{10, 1.0 / 3, false}, // cusp 11
		{11, 2.0 / 3, false}, // cusp 12
		{1, 2.0 / 3, true},   // cusp 2
		{2, 1.0 / 3, true},   // cusp 3
	}

	for _, c := range intermediate {
		lon, ok := placidusCusp(armc, eps, lat, c.fraction, c.below)
		if !ok {
			return cusps, false
		}
		cusps[c.index] = lon
	}

	cusps[0] = asc
	cusps[9] = mc
	fillOpposites(&cusps)
	return cusps, true
}

func placidusCusp(armc, eps, lat, fraction float64, below bool) (float64, bool) {
	ra := armc + fraction*90
	if below {
		ra = armc + 180 - fraction*90
	}

	for range maxPlacidusIterations {
		decl := math.Atan(sinDeg(ra)*tanDeg(eps)) * rad2deg
		x := -tanDeg(lat) * tanDeg(decl)
		if x < -1 || x > 1 {
			return 0, false
		}
		semiArc := math.Acos(x) * rad2deg

		next := armc + fraction*semiArc
		if below {
			next = armc + 180 - fraction*(180-semiArc)
		}

		done := math.Abs(next-ra) < placidusTolerance
		ra = next
		if done {
			return normalizeDegrees(atan2Deg(sinDeg(ra), cosDeg(ra)*cosDeg(eps))), true
		}
	}
	return 0, false
}

// porphyryCusps trisects the ecliptic arcs between the angles
func porphyryCusps(asc, mc float64) [12]float64 {
	var cusps [12]float64

	upper := normalizeDegrees(asc - mc)
	lower := normalizeDegrees(mc + 180 - asc)

	cusps[0] = asc
	cusps[1] = normalizeDegrees(asc + lower/3)
	cusps[2] = normalizeDegrees(asc + 2*lower/3)
	cusps[9] = mc
	cusps[10] = normalizeDegrees(mc + upper/3)
	cusps[11] = normalizeDegrees(mc + 2*upper/3)
	fillOpposites(&cusps)
	return cusps
}

// fillOpposites sets cusps 4-9 from cusps 10-12 and 1-3
func fillOpposites(cusps *[12]float64) {
	for i := 0; i < 3; i++ {
		cusps[i+3] = normalizeDegrees(cusps[i+9] + 180)
		cusps[i+6] = normalizeDegrees(cusps[i] + 180)
	}
}
