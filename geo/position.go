package geo

import (
	"math"
	"strconv"
)

// keyScale is the quantization factor behind Key (1e-7 degrees).
const keyScale = 1e7

// Position is a point on the plane in degrees.
type Position struct {
	Lat float64 `json:"lat" toml:"lat" yaml:"lat"`
	Lng float64 `json:"lng" toml:"lng" yaml:"lng"`
}

// Key identifies a position up to 1e-7 degrees.
type Key struct {
	Lat, Lng int64
}

// Distance returns the Euclidean distance to o in degrees.
func (p Position) Distance(o Position) float64 {
	dLat := o.Lat - p.Lat
	dLng := o.Lng - p.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// Next returns the position one step of length step away in direction d.
func (p Position) Next(d Direction, step float64) Position {
	return Position{Lat: p.Lat + d.Cos()*step, Lng: p.Lng + d.Sin()*step}
}

// IsClose reports whether o lies strictly within radius of p.
func (p Position) IsClose(o Position, radius float64) bool {
	return p.Distance(o) < radius
}

// Key returns the quantized identity of p.
func (p Position) Key() Key {
	return Key{Lat: int64(math.Round(p.Lat * keyScale)), Lng: int64(math.Round(p.Lng * keyScale))}
}

// String formats p as "lat,lng" with the shortest exact decimal representation.
func (p Position) String() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}
