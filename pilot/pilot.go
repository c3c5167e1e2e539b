package pilot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/geo"
)

// ErrUnknownPilot indicates an unrecognised pilot name.
var ErrUnknownPilot = errors.New("pilot: unknown pilot")

// Pilot names accepted by New.
const (
	NameStateless  = "stateless"
	NameStateful   = "stateful"
	NameAttraction = "attraction"
)

// DefaultSearchBound is the default frontier and explored-set bound of the stateful planner.
const DefaultSearchBound = 4096

// Pilot chooses the next direction for a drone.
type Pilot interface {
	Name() string
	Choose(d *game.Drone) geo.Direction
}

// Options configures the pilots built by New.
//
// Seed        – random seed of the stateless pilot.
// MaxMoves    – move budget of a flight; the stateful planner never looks beyond it.
// SearchBound – frontier and explored-set bound of the stateful planner.
type Options struct {
	Seed        int64
	MaxMoves    int
	SearchBound int
}

// New returns the pilot registered under name.
func New(name string, opts Options) (Pilot, error) {
	switch name {
	case NameStateless:
		return NewStateless(opts.Seed), nil
	case NameAttraction:
		return NewAttraction(), nil
	case NameStateful:
		return NewStateful(opts.MaxMoves, opts.SearchBound), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPilot, name)
	}
}

// Names lists the pilot names accepted by New.
func Names() []string {
	return []string{NameStateless, NameStateful, NameAttraction}
}

// legal returns the directions whose next position stays inside the play area,
// in compass order.
func legal(d *game.Drone) []geo.Direction {
	var (
		rules = d.Rules()
		pos   = d.Position()
		out   = make([]geo.Direction, 0, geo.NumDirections)
	)
	for _, dir := range geo.Directions() {
		if rules.InPlayArea(pos.Next(dir, rules.MoveDistance)) {
			out = append(out, dir)
		}
	}

	return out
}
