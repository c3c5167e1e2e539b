package geo

import (
	"fmt"
	"math"
)

// Direction is one of the sixteen compass points, N = 0 clockwise to NNW = 15.
type Direction uint8

const (
	N Direction = iota
	NNE
	NE
	ENE
	E
	ESE
	SE
	SSE
	S
	SSW
	SW
	WSW
	W
	WNW
	NW
	NNW
)

// NumDirections is the number of compass points.
const NumDirections = 16

var (
	directionNames = [NumDirections]string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}

	// sinTable and cosTable hold the precomputed components of every direction.
	sinTable, cosTable [NumDirections]float64
)

func init() {
	for i := 0; i < NumDirections; i++ {
		a := Direction(i).Angle()
		sinTable[i] = math.Sin(a)
		cosTable[i] = math.Cos(a)
	}
}

// Directions returns all compass points in clockwise order from north.
func Directions() []Direction {
	out := make([]Direction, NumDirections)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// Angle returns the clockwise angle from north in radians.
func (d Direction) Angle() float64 { return float64(d) * math.Pi / 8 }

// Sin returns sin(Angle()).
func (d Direction) Sin() float64 { return sinTable[d%NumDirections] }

// Cos returns cos(Angle()).
func (d Direction) Cos() float64 { return cosTable[d%NumDirections] }

// Valid reports whether d is one of the sixteen compass points.
func (d Direction) Valid() bool { return d < NumDirections }

// String returns the compass abbreviation, e.g. "NNE".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection maps a compass abbreviation back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("geo: unknown direction %q", s)
}
