package geo

// Rectangle is an axis-aligned area given by its north-west and south-east corners.
type Rectangle struct {
	TopLeft     Position `json:"top_left" toml:"top_left" yaml:"top_left"`
	BottomRight Position `json:"bottom_right" toml:"bottom_right" yaml:"bottom_right"`
}

// NewRectangle builds a Rectangle from its bounding coordinates.
func NewRectangle(top, left, bottom, right float64) Rectangle {
	return Rectangle{
		TopLeft:     Position{Lat: top, Lng: left},
		BottomRight: Position{Lat: bottom, Lng: right},
	}
}

// Contains reports whether p lies strictly inside r; the border is outside.
func (r Rectangle) Contains(p Position) bool {
	return p.Lat < r.TopLeft.Lat && p.Lat > r.BottomRight.Lat &&
		p.Lng > r.TopLeft.Lng && p.Lng < r.BottomRight.Lng
}

// Center returns the midpoint of r.
func (r Rectangle) Center() Position {
	return Position{
		Lat: (r.TopLeft.Lat + r.BottomRight.Lat) / 2,
		Lng: (r.TopLeft.Lng + r.BottomRight.Lng) / 2,
	}
}
