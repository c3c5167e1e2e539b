package game

import (
	"math"

	"github.com/katalvlaran/powergrab/geo"
)

// Map is the set of stations in play.
type Map struct {
	Stations []*Station
}

// NewMap returns a map over the given stations.
func NewMap(stations ...*Station) *Map {
	return &Map{Stations: stations}
}

// Clone returns a deep copy; station state changes in the copy do not leak back.
func (m *Map) Clone() *Map {
	out := &Map{Stations: make([]*Station, len(m.Stations))}
	for i, s := range m.Stations {
		cp := *s
		out.Stations[i] = &cp
	}
	return out
}

// Nearest returns the station closest to p, or nil for an empty map.
// Ties go to the earliest station.
func (m *Map) Nearest(p geo.Position) *Station {
	var (
		best  *Station
		bestD = math.Inf(1)
		d     float64
	)
	for _, s := range m.Stations {
		if d = s.Position.Distance(p); d < bestD {
			best, bestD = s, d
		}
	}
	return best
}

// Close returns the nearest station if it lies strictly within radius of p, else nil.
func (m *Map) Close(p geo.Position, radius float64) *Station {
	s := m.Nearest(p)
	if s == nil || s.Position.Distance(p) >= radius {
		return nil
	}
	return s
}

// Station returns the station with the given id, or nil.
func (m *Map) Station(id string) *Station {
	for _, s := range m.Stations {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Positive returns the stations that still hold coins.
func (m *Map) Positive() []*Station {
	var out []*Station
	for _, s := range m.Stations {
		if s.Positive() {
			out = append(out, s)
		}
	}
	return out
}

// OnlyNegative reports whether no station holds coins any more.
func (m *Map) OnlyNegative() bool {
	for _, s := range m.Stations {
		if s.Positive() {
			return false
		}
	}
	return true
}

// TotalPositiveCoins sums the coins of every positive station.
func (m *Map) TotalPositiveCoins() float64 {
	var total float64
	for _, s := range m.Stations {
		if s.Positive() {
			total += s.Coins
		}
	}
	return total
}
