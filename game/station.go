package game

import (
	"fmt"

	"github.com/katalvlaran/powergrab/geo"
)

// Station is a fixed charging point holding coins and power; either may be negative.
type Station struct {
	ID       string
	Position geo.Position
	Coins    float64
	Power    float64
}

// NewStation returns a station or ErrEmptyStationID.
func NewStation(id string, pos geo.Position, coins, power float64) (*Station, error) {
	if id == "" {
		return nil, ErrEmptyStationID
	}
	return &Station{ID: id, Position: pos, Coins: coins, Power: power}, nil
}

// Positive reports whether the station still holds coins worth collecting.
func (s *Station) Positive() bool { return s.Coins > 0 }

// Negative reports whether connecting would cost coins or power.
func (s *Station) Negative() bool { return s.Coins < 0 || s.Power < 0 }

// Connect transfers all resources between s and d when d is within the
// close distance. Drone balances are clamped at zero and the station keeps
// what the drone could not absorb; positive station balances end at zero.
func (s *Station) Connect(d *Drone) {
	if d.pos.Distance(s.Position) >= d.rules.CloseDistance {
		return
	}
	droneCoins, dronePower := d.coins, d.power
	d.AddCoins(s.Coins)
	d.AddPower(s.Power)
	s.Coins += droneCoins
	s.Power += dronePower
	if s.Coins > 0 {
		s.Coins = 0
	}
	if s.Power > 0 {
		s.Power = 0
	}
}

func (s *Station) String() string {
	return fmt.Sprintf("station %s at (%s) coins=%g power=%g", s.ID, s.Position, s.Coins, s.Power)
}
