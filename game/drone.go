package game

import "github.com/katalvlaran/powergrab/geo"

// Drone is the agent flying over a Map.
type Drone struct {
	pos   geo.Position
	coins float64
	power float64
	moves int
	m     *Map
	rules Rules
}

// NewDrone places a drone at pos. The drone mutates m as it connects to stations.
func NewDrone(pos geo.Position, m *Map, coins, power float64, rules Rules) (*Drone, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if coins < 0 || power < 0 {
		return nil, ErrNegativeResources
	}
	return &Drone{pos: pos, coins: coins, power: power, m: m, rules: rules}, nil
}

// Position returns the current position.
func (d *Drone) Position() geo.Position { return d.pos }

// Coins returns the coins held.
func (d *Drone) Coins() float64 { return d.coins }

// Power returns the power held.
func (d *Drone) Power() float64 { return d.power }

// Moves returns the number of completed moves.
func (d *Drone) Moves() int { return d.moves }

// Map returns the map the drone flies over.
func (d *Drone) Map() *Map { return d.m }

// Rules returns the game constants in force.
func (d *Drone) Rules() Rules { return d.rules }

// CanMove reports whether the drone has power for another move.
func (d *Drone) CanMove() bool { return d.power >= d.rules.PowerPerMove }

// AddCoins adds c (possibly negative); the balance never drops below zero.
func (d *Drone) AddCoins(c float64) {
	d.coins += c
	if d.coins < 0 {
		d.coins = 0
	}
}

// AddPower adds p (possibly negative); the balance never drops below zero.
func (d *Drone) AddPower(p float64) {
	d.power += p
	if d.power < 0 {
		d.power = 0
	}
}

// Move flies one step in dir, pays for it and connects to the close station,
// if any. Without enough power the drone stays put and its power drops to zero.
// It reports whether the drone moved.
func (d *Drone) Move(dir geo.Direction) bool {
	if !d.CanMove() {
		d.power = 0
		return false
	}
	d.pos = d.pos.Next(dir, d.rules.MoveDistance)
	d.power -= d.rules.PowerPerMove
	d.moves++
	if s := d.m.Close(d.pos, d.rules.CloseDistance); s != nil {
		s.Connect(d)
	}
	return true
}

// Clone returns an independent drone over a deep copy of the map.
func (d *Drone) Clone() *Drone {
	cp := *d
	cp.m = d.m.Clone()
	return &cp
}

// Score returns the coins held as a fraction of total, or 0 when total is not positive.
func Score(coins, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return coins / total
}
