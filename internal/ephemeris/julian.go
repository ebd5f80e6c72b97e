package ephemeris

import (
	"math"
	"time"
)

const (
	// J2000 is the Julian day of 2000-01-01 12:00 UT
	J2000 = 2451545.0

	daysPerCentury = 36525.0
)

// Supported window of the orbital element tables, years -2999 to 2999
var (
	minJulianDay = julianDayFromCalendar(-2999, 1, 1, 0)
	maxJulianDay = julianDayFromCalendar(3000, 1, 1, 0)
)

// JulianDay returns the continuous Julian day number of t in Universal Time.
// The proleptic Gregorian calendar is used for every date.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	hours := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	return julianDayFromCalendar(t.Year(), int(t.Month()), t.Day(), hours)
}

func julianDayFromCalendar(year, month, day int, hours float64) float64 {
	y := float64(year)
	m := float64(month)
	if month <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)
	d := float64(day) + hours/24
	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5
}

// centuriesSinceJ2000 converts a Julian day to Julian centuries from J2000
func centuriesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / daysPerCentury
}

func inSupportedRange(jd float64) bool {
	return jd >= minJulianDay && jd < maxJulianDay
}
