package pilot

import (
	"math/rand"

	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/geo"
)

// Stateless picks the legal move that lands next to the richest station.
type Stateless struct {
	rng *rand.Rand
}

// NewStateless returns a stateless pilot whose tie-breaking is driven by seed.
func NewStateless(seed int64) *Stateless {
	return &Stateless{rng: rand.New(rand.NewSource(seed))}
}

// Name returns "stateless".
func (p *Stateless) Name() string { return NameStateless }

// Choose shuffles the legal directions and returns the first one with the most
// coins at its close station; a move without a close station is worth 0.
func (p *Stateless) Choose(d *game.Drone) geo.Direction {
	dirs := legal(d)
	if len(dirs) == 0 {
		return geo.N
	}
	p.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	var (
		best      = dirs[0]
		bestCoins = reward(d, best)
		coins     float64
	)
	for _, dir := range dirs[1:] {
		if coins = reward(d, dir); coins > bestCoins {
			best, bestCoins = dir, coins
		}
	}

	return best
}

// reward returns the coins of the station close to the position one move in dir away.
func reward(d *game.Drone, dir geo.Direction) float64 {
	rules := d.Rules()
	s := d.Map().Close(d.Position().Next(dir, rules.MoveDistance), rules.CloseDistance)
	if s == nil {
		return 0
	}

	return s.Coins
}
