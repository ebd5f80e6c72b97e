package ephemeris

import (
	"fmt"
	"math"
)

// orbitalElements are Keplerian elements referred to the mean ecliptic and
// equinox of J2000, with linear rates per Julian century.
// Source: JPL "Keplerian Elements for Approximate Positions of the Major
// Planets", table 2a/2b (valid 3000 BC to 3000 AD).
type orbitalElements struct {
	a, e, i, meanLon, perihelion, node float64 // au, -, deg, deg, deg, deg
	aDot, eDot, iDot, meanLonDot, perihelionDot, nodeDot float64

	// additional mean anomaly terms for Uranus through Pluto. Jupiter and
	// Saturn keep only b; their long-period terms come from
	// jupiterSaturnPerturbation instead.
	b, c, s, f float64
}

// Earth-Moon barycenter, used as the observer position
var earthElements = orbitalElements{
	a: 1.00000018, e: 0.01673163, i: -0.00054346, meanLon: 100.46691572, perihelion: 102.93005885, node: -5.11260389,
	aDot: -0.00000003, eDot: -0.00003661, iDot: -0.01337178, meanLonDot: 35999.37306329, perihelionDot: 0.31795260, nodeDot: -0.24123856,
}

var jupiterElements = orbitalElements{
	a: 5.20248019, e: 0.04853590, i: 1.29861416, meanLon: 34.33479152, perihelion: 14.27495244, node: 100.29282654,
	aDot: -0.00002864, eDot: 0.00018026, iDot: -0.00322699, meanLonDot: 3034.90371757, perihelionDot: 0.18199196, nodeDot: 0.13024619,
	b: -0.00012452,
}

var saturnElements = orbitalElements{
	a: 9.54149883, e: 0.05550825, i: 2.49424102, meanLon: 50.07571329, perihelion: 92.86136063, node: 113.63998702,
	aDot: -0.00003065, eDot: -0.00032044, iDot: 0.00451969, meanLonDot: 1222.11494724, perihelionDot: 0.54179478, nodeDot: -0.25015002,
	b: 0.00025899,
}

var planetElements = []struct {
	body     Body
	elements orbitalElements
}{
	{Mercury, orbitalElements{
		a: 0.38709843, e: 0.20563661, i: 7.00559432, meanLon: 252.25166724, perihelion: 77.45771895, node: 48.33961819,
		aDot: 0.00000000, eDot: 0.00002123, iDot: -0.00590158, meanLonDot: 149472.67486623, perihelionDot: 0.15940013, nodeDot: -0.12214182,
	}},
	{Venus, orbitalElements{
		a: 0.72332102, e: 0.00676399, i: 3.39777545, meanLon: 181.97970850, perihelion: 131.76755713, node: 76.67261496,
		aDot: -0.00000026, eDot: -0.00005107, iDot: 0.00043494, meanLonDot: 58517.81560260, perihelionDot: 0.05679648, nodeDot: -0.27274174,
	}},
	{Mars, orbitalElements{
		a: 1.52371243, e: 0.09336511, i: 1.85181869, meanLon: -4.56813164, perihelion: -23.91744784, node: 49.71320984,
		aDot: 0.00000097, eDot: 0.00009149, iDot: -0.00724757, meanLonDot: 19140.29934243, perihelionDot: 0.45223625, nodeDot: -0.26852431,
	}},
	{Jupiter, jupiterElements},
	{Saturn, saturnElements},
	{Uranus, orbitalElements{
		a: 19.18797948, e: 0.04685740, i: 0.77298127, meanLon: 314.20276625, perihelion: 172.43404441, node: 73.96250215,
		aDot: -0.00020455, eDot: -0.00001550, iDot: -0.00180155, meanLonDot: 428.49512595, perihelionDot: 0.09266985, nodeDot: 0.05739699,
		b: 0.00058331, c: -0.97731848, s: 0.17689245, f: 7.67025000,
	}},
	{Neptune, orbitalElements{
		a: 30.06952752, e: 0.00895439, i: 1.77005520, meanLon: 304.22289287, perihelion: 46.68158724, node: 131.78635853,
		aDot: 0.00006447, eDot: 0.00000818, iDot: 0.00022400, meanLonDot: 218.46515314, perihelionDot: 0.01009938, nodeDot: -0.00606302,
		b: -0.00041348, c: 0.68346318, s: -0.10162547, f: 7.67025000,
	}},
	{Pluto, orbitalElements{
		a: 39.48686035, e: 0.24885238, i: 17.14104260, meanLon: 238.96535011, perihelion: 224.09702598, node: 110.30167986,
		aDot: 0.00449751, eDot: 0.00006016, iDot: 0.00000501, meanLonDot: 145.18042903, perihelionDot: -0.00968827, nodeDot: -0.00809981,
		b: -0.01262724,
	}},
}

const (
	// general precession in longitude, degrees per Julian century
	precessionRate = 5028.796195 / 3600

	keplerTolerance     = 1e-12
	maxKeplerIterations = 50
)

type vec3 struct {
	x, y, z float64
}

func (v vec3) sub(o vec3) vec3 {
	return vec3{v.x - o.x, v.y - o.y, v.z - o.z}
}

// rotateLongitude turns v about the ecliptic pole by d degrees
func (v vec3) rotateLongitude(d float64) vec3 {
	c, s := cosDeg(d), sinDeg(d)
	return vec3{v.x*c - v.y*s, v.x*s + v.y*c, v.z}
}

// meanAnomaly returns the mean anomaly in degrees at t Julian centuries
// from J2000
func (el orbitalElements) meanAnomaly(t float64) float64 {
	m := el.meanLon + el.meanLonDot*t - (el.perihelion + el.perihelionDot*t) + el.b*t*t
	if el.f != 0 {
		m += el.c*cosDeg(el.f*t) + el.s*sinDeg(el.f*t)
	}
	return m
}

// heliocentric returns the J2000 ecliptic position in au at t Julian
// centuries from J2000.
func (el orbitalElements) heliocentric(t float64) (vec3, error) {
	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	inc := el.i + el.iDot*t
	peri := el.perihelion + el.perihelionDot*t
	node := el.node + el.nodeDot*t

	eccAnomaly, err := solveKepler(el.meanAnomaly(t), e)
	if err != nil {
		return vec3{}, err
	}

	// Position in the orbital plane, x toward perihelion
	xp := a * (math.Cos(eccAnomaly) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(eccAnomaly)

	w := (peri - node) * deg2rad
	o := node * deg2rad
	i := inc * deg2rad
	cw, sw := math.Cos(w), math.Sin(w)
	co, so := math.Cos(o), math.Sin(o)
	ci, si := math.Cos(i), math.Sin(i)

	return vec3{
		x: (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp,
		y: (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp,
		z: (sw*si)*xp + (cw*si)*yp,
	}, nil
}

// solveKepler solves M = E - e sin E for the eccentric anomaly in radians,
// given the mean anomaly in degrees.
func solveKepler(meanAnomalyDeg, e float64) (float64, error) {
	m := normalizeDegrees(meanAnomalyDeg)
	if m > 180 {
		m -= 360
	}
	m *= deg2rad

	ecc := m + e*math.Sin(m)
	for range maxKeplerIterations {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < keplerTolerance {
			return ecc, nil
		}
	}
	return 0, fmt.Errorf("%w: kepler equation did not converge (M=%f, e=%f)",
		ErrEphemerisComputation, meanAnomalyDeg, e)
}

// bodyLongitudes returns geocentric tropical ecliptic longitudes of date for
// every chart body, in degrees.
func bodyLongitudes(jd float64) ([NumBodies]float64, error) {
	var out [NumBodies]float64

	t := centuriesSinceJ2000(jd)
	precession := precessionRate * t

	earth, err := earthElements.heliocentric(t)
	if err != nil {
		return out, fmt.Errorf("earth position: %w", err)
	}

	// The Sun is seen from Earth opposite to Earth's heliocentric direction
	out[Sun] = normalizeDegrees(atan2Deg(-earth.y, -earth.x) + precession)
	out[Moon], err = moonLongitude(jd)
	if err != nil {
		return out, fmt.Errorf("%s position: %w", Moon, err)
	}

	for _, p := range planetElements {
		helio, err := p.elements.heliocentric(t)
		if err != nil {
			return out, fmt.Errorf("%s position: %w", p.body, err)
		}
		if dl := jupiterSaturnPerturbation(p.body, t); dl != 0 {
			helio = helio.rotateLongitude(dl)
		}
		geo := helio.sub(earth)
		out[p.body] = normalizeDegrees(atan2Deg(geo.y, geo.x) + precession)
	}

	for b, lon := range out {
		if !finite(lon) {
			return out, fmt.Errorf("%w: non-finite longitude for %s", ErrEphemerisComputation, Body(b))
		}
	}

	return out, nil
}

// jupiterSaturnPerturbation returns the correction in degrees to the
// heliocentric longitude of Jupiter or Saturn from their mutual
// perturbations, dominated by the great inequality (2Mj - 5Ms, ~900 years).
// Other bodies get 0.
func jupiterSaturnPerturbation(body Body, t float64) float64 {
	if body != Jupiter && body != Saturn {
		return 0
	}
	mj := jupiterElements.meanAnomaly(t)
	ms := saturnElements.meanAnomaly(t)

	if body == Jupiter {
		return -0.332*sinDeg(2*mj-5*ms-67.6) -
			0.056*sinDeg(2*mj-2*ms+21) +
			0.042*sinDeg(3*mj-5*ms+21) -
			0.036*sinDeg(mj-2*ms) +
			0.022*cosDeg(mj-ms) +
			0.023*sinDeg(2*mj-3*ms+52) -
			0.016*sinDeg(mj-5*ms-69)
	}
	return 0.812*sinDeg(2*mj-5*ms-67.6) -
		0.229*cosDeg(2*mj-4*ms-2) +
		0.119*sinDeg(mj-2*ms-3) +
		0.046*sinDeg(2*mj-6*ms-69) +
		0.014*sinDeg(mj-3*ms+32)
}
