package ephemeris

import "fmt"

// Body identifies one of the celestial bodies included in every chart.
// The set is closed: a Result always carries exactly NumBodies longitudes.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto

	// NumBodies is the number of bodies in a chart
	NumBodies = 10
)

var bodyNames = [NumBodies]string{
	"Sun",
	"Moon",
	"Mercury",
	"Venus",
	"Mars",
	"Jupiter",
	"Saturn",
	"Uranus",
	"Neptune",
	"Pluto",
}

// Bodies returns all bodies in chart order
func Bodies() []Body {
	bodies := make([]Body, NumBodies)
	for i := range bodies {
		bodies[i] = Body(i)
	}
	return bodies
}

// String returns the body's display name
func (b Body) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Valid reports whether b is one of the ten chart bodies
func (b Body) Valid() bool {
	return b >= Sun && b <= Pluto
}

// ParseBody returns the body with the given display name
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("unknown body %q", name)
}
