package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/powergrab/geo"
)

// Sentinel errors for game construction.
var (
	// ErrEmptyStationID indicates a station without an identifier.
	ErrEmptyStationID = errors.New("game: empty station id")

	// ErrNegativeResources indicates a drone created with negative coins or power.
	ErrNegativeResources = errors.New("game: coins and power must be non-negative")

	// ErrNilMap indicates a drone created without a map.
	ErrNilMap = errors.New("game: nil map")

	// ErrInvalidRules indicates rules that cannot drive a game.
	ErrInvalidRules = errors.New("game: invalid rules")
)

// Rules holds the game constants.
type Rules struct {
	CloseDistance float64       `json:"close_distance" toml:"close_distance" yaml:"close_distance"`
	PowerPerMove  float64       `json:"power_per_move" toml:"power_per_move" yaml:"power_per_move"`
	MoveDistance  float64       `json:"move_distance" toml:"move_distance" yaml:"move_distance"`
	PlayArea      geo.Rectangle `json:"play_area" toml:"play_area" yaml:"play_area"`
}

// DefaultRules returns the standard PowerGrab constants over the central
// Edinburgh campus play area.
func DefaultRules() Rules {
	return Rules{
		CloseDistance: 0.00025,
		PowerPerMove:  1.25,
		MoveDistance:  0.0003,
		PlayArea:      geo.NewRectangle(55.946233, -3.192473, 55.942617, -3.184319),
	}
}

// Validate checks that distances and costs are positive and the play area is not empty.
func (r Rules) Validate() error {
	switch {
	case r.CloseDistance <= 0:
		return fmt.Errorf("%w: close distance %v", ErrInvalidRules, r.CloseDistance)
	case r.PowerPerMove <= 0:
		return fmt.Errorf("%w: power per move %v", ErrInvalidRules, r.PowerPerMove)
	case r.MoveDistance <= 0:
		return fmt.Errorf("%w: move distance %v", ErrInvalidRules, r.MoveDistance)
	case r.PlayArea.TopLeft.Lat <= r.PlayArea.BottomRight.Lat ||
		r.PlayArea.TopLeft.Lng >= r.PlayArea.BottomRight.Lng:
		return fmt.Errorf("%w: empty play area", ErrInvalidRules)
	}

	return nil
}

// InPlayArea reports whether p lies strictly inside the play area.
func (r Rules) InPlayArea(p geo.Position) bool { return r.PlayArea.Contains(p) }
