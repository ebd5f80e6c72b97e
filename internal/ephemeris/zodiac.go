package ephemeris

import "fmt"

// Sign is one of the twelve 30 degree divisions of the tropical zodiac
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Placement is a longitude expressed as a sign and a degree within it
type Placement struct {
	Sign    Sign
	Degrees float64 // [0, 30)
}

func (p Placement) String() string {
	return fmt.Sprintf("%.2f° %s", p.Degrees, p.Sign)
}

// PlacementOf converts an ecliptic longitude in degrees to a zodiac placement
func PlacementOf(longitude float64) Placement {
	lon := normalizeDegrees(longitude)
	sign := Sign(int(lon / 30))
	if sign > Pisces {
		sign = Pisces
	}
	return Placement{
		Sign:    sign,
		Degrees: lon - float64(sign)*30,
	}
}

// HouseOf returns the house number (1-12) containing the longitude, given
// cusps in order 1 through 12.
func HouseOf(longitude float64, cusps [12]float64) int {
	lon := normalizeDegrees(longitude)
	for i := 0; i < 12; i++ {
		start := cusps[i]
		span := normalizeDegrees(cusps[(i+1)%12] - start)
		if normalizeDegrees(lon-start) < span {
			return i + 1
		}
	}
	// Only reachable when all cusps coincide
	return 1
}
