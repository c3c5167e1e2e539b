package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/pilot"
)

// Sentinel errors returned by New.
var (
	// ErrNilDrone indicates a simulation without a drone.
	ErrNilDrone = errors.New("simulation: nil drone")

	// ErrNilPilot indicates a simulation without a pilot.
	ErrNilPilot = errors.New("simulation: nil pilot")

	// ErrBadMaxMoves indicates a negative move budget.
	ErrBadMaxMoves = errors.New("simulation: max moves must be non-negative")
)

// Simulation couples a drone with the pilot steering it.
type Simulation struct {
	drone    *game.Drone
	pilot    pilot.Pilot
	maxMoves int
	logger   *log.Logger
}

// Result is the outcome of a run.
type Result struct {
	Moves    []Move
	Coins    float64       // coins held at the end
	Power    float64       // power held at the end
	Total    float64       // positive coins on the map before the flight
	Score    float64       // Coins / Total
	Duration time.Duration // wall time of the run
}

// New validates its arguments and returns a simulation. A nil logger selects log.Default().
func New(d *game.Drone, p pilot.Pilot, maxMoves int, logger *log.Logger) (*Simulation, error) {
	if d == nil {
		return nil, ErrNilDrone
	}
	if p == nil {
		return nil, ErrNilPilot
	}
	if maxMoves < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxMoves, maxMoves)
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Simulation{drone: d, pilot: p, maxMoves: maxMoves, logger: logger}, nil
}

// Run flies the drone until the move budget or its power is spent.
func (s *Simulation) Run(ctx context.Context) (Result, error) {
	var (
		begin = time.Now()
		total = s.drone.Map().TotalPositiveCoins()
		moves = make([]Move, 0, s.maxMoves)
		m     Move
	)
	for i := 0; i < s.maxMoves && s.drone.CanMove(); i++ {
		if err := ctx.Err(); err != nil {
			return s.result(moves, total, begin), fmt.Errorf("simulation: stopped after %d moves: %w", i, err)
		}
		m.Before = s.drone.Position()
		m.Direction = s.pilot.Choose(s.drone)
		s.drone.Move(m.Direction)
		m.After = s.drone.Position()
		m.Coins, m.Power = s.drone.Coins(), s.drone.Power()
		moves = append(moves, m)

		s.logger.Debug("move", "n", i+1, "dir", m.Direction, "at", m.After, "coins", m.Coins, "power", m.Power)
	}

	res := s.result(moves, total, begin)
	s.logger.Info("flight finished",
		"pilot", s.pilot.Name(),
		"moves", len(res.Moves),
		"coins", res.Coins,
		"score", res.Score,
		"duration", res.Duration)

	return res, nil
}

func (s *Simulation) result(moves []Move, total float64, begin time.Time) Result {
	return Result{
		Moves:    moves,
		Coins:    s.drone.Coins(),
		Power:    s.drone.Power(),
		Total:    total,
		Score:    game.Score(s.drone.Coins(), total),
		Duration: time.Since(begin),
	}
}
