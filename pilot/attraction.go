package pilot

import (
	"math"

	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/geo"
)

const (
	// memorySize is the number of recent positions the attraction pilot avoids.
	memorySize = 10

	// attractionEps keeps the inverse distance finite on top of a station.
	attractionEps = 1e-10
)

// Attraction follows the field of positive stations and avoids negative ones.
type Attraction struct {
	visited []geo.Key
	seen    int // drone moves already recorded in visited
}

// NewAttraction returns an attraction pilot with an empty memory.
func NewAttraction() *Attraction { return &Attraction{} }

// Name returns "attraction".
func (p *Attraction) Name() string { return NameAttraction }

// Choose returns the legal, recently unvisited direction with the highest
// attraction score. When every legal move leads somewhere recently visited it
// returns the first legal direction.
func (p *Attraction) Choose(d *game.Drone) geo.Direction {
	p.remember(d)

	dirs := legal(d)
	if len(dirs) == 0 {
		return geo.N
	}
	var (
		rules    = d.Rules()
		onlyNeg  = d.Map().OnlyNegative()
		best     = dirs[0]
		bestVal  = math.Inf(-1)
		next     geo.Position
		val      float64
		anyFresh bool
	)
	for _, dir := range dirs {
		next = d.Position().Next(dir, rules.MoveDistance)
		if p.wasVisited(next.Key()) {
			continue
		}
		if val = attraction(d.Map(), next, rules.CloseDistance, onlyNeg); !anyFresh || val > bestVal {
			best, bestVal, anyFresh = dir, val, true
		}
	}

	return best
}

// remember records the drone position once per completed move.
func (p *Attraction) remember(d *game.Drone) {
	if d.Moves() <= p.seen {
		return
	}
	p.seen = d.Moves()
	p.visited = append(p.visited, d.Position().Key())
	if len(p.visited) > memorySize {
		p.visited = p.visited[1:]
	}
}

func (p *Attraction) wasVisited(k geo.Key) bool {
	for _, v := range p.visited {
		if v == k {
			return true
		}
	}
	return false
}

// attraction sums coef/dist over every station: positive stations attract
// with coef 1; negative ones repel with coef -1 when close to pos and are
// ignored otherwise, unless no positive station is left, in which case every
// negative station repels and a close one repels overwhelmingly.
func attraction(m *game.Map, pos geo.Position, radius float64, onlyNegative bool) float64 {
	var (
		total float64
		coef  float64
		near  bool
	)
	for _, s := range m.Stations {
		near = s.Position.IsClose(pos, radius)
		switch {
		case s.Coins > 0:
			coef = 1
		case s.Coins < 0 && onlyNegative && near:
			coef = -1e10
		case s.Coins < 0 && onlyNegative:
			coef = -1
		case s.Coins < 0 && near:
			coef = -1
		default:
			coef = 0
		}
		total += coef / (attractionEps + s.Position.Distance(pos))
	}

	return total
}
