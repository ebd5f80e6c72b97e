package ephemeris

import "math"

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// normalizeDegrees maps an angle into [0, 360)
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod of a tiny negative value can round back up to 360
	if d >= 360 {
		d -= 360
	}
	return d
}

func sinDeg(d float64) float64 { return math.Sin(d * deg2rad) }
func cosDeg(d float64) float64 { return math.Cos(d * deg2rad) }
func tanDeg(d float64) float64 { return math.Tan(d * deg2rad) }

func atan2Deg(y, x float64) float64 { return math.Atan2(y, x) * rad2deg }

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
