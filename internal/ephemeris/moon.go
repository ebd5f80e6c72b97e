package ephemeris

import "math"

// Epoch of the lunar elements below: 1999-12-31 00:00 UT
const lunarEpoch = 2451543.5

// moonLongitude returns the Moon's geocentric ecliptic longitude of date in
// degrees. Mean lunar elements are perturbed by the twelve largest periodic
// terms, good to a few arcminutes.
func moonLongitude(jd float64) (float64, error) {
	d := jd - lunarEpoch

	node := 125.1228 - 0.0529538083*d
	incl := 5.1454
	perigee := 318.0634 + 0.1643573223*d
	a := 60.2666
	e := 0.054900
	meanAnomaly := normalizeDegrees(115.3654 + 13.0649929509*d)

	sunPerigee := 282.9404 + 4.70935e-5*d
	sunAnomaly := normalizeDegrees(356.0470 + 0.9856002585*d)

	ecc, err := solveKepler(meanAnomaly, e)
	if err != nil {
		return 0, err
	}

	xv := a * (math.Cos(ecc) - e)
	yv := a * math.Sqrt(1-e*e) * math.Sin(ecc)
	trueAnomaly := atan2Deg(yv, xv)
	r := math.Hypot(xv, yv)

	u := trueAnomaly + perigee
	xh := r * (cosDeg(node)*cosDeg(u) - sinDeg(node)*sinDeg(u)*cosDeg(incl))
	yh := r * (sinDeg(node)*cosDeg(u) + cosDeg(node)*sinDeg(u)*cosDeg(incl))
	lon := atan2Deg(yh, xh)

	moonMeanLon := node + perigee + meanAnomaly
	sunMeanLon := sunPerigee + sunAnomaly
	elong := moonMeanLon - sunMeanLon
	arg := moonMeanLon - node

	lon += -1.274*sinDeg(meanAnomaly-2*elong) + // evection
		0.658*sinDeg(2*elong) + // variation
		-0.186*sinDeg(sunAnomaly) + // yearly equation
		-0.059*sinDeg(2*meanAnomaly-2*elong) +
		-0.057*sinDeg(meanAnomaly-2*elong+sunAnomaly) +
		0.053*sinDeg(meanAnomaly+2*elong) +
		0.046*sinDeg(2*elong-sunAnomaly) +
		0.041*sinDeg(meanAnomaly-sunAnomaly) +
		-0.035*sinDeg(elong) + // parallactic equation
		-0.031*sinDeg(meanAnomaly+sunAnomaly) +
		-0.015*sinDeg(2*arg-2*elong) +
		0.011*sinDeg(meanAnomaly-4*elong)

	return normalizeDegrees(lon), nil
}
