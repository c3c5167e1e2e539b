package tsp

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by NewSolver and setters.
var (
	// ErrBadMaxIterations indicates a negative iteration cap.
	ErrBadMaxIterations = errors.New("tsp: max iterations must be non-negative")

	// ErrBadEps indicates a negative or NaN improvement tolerance.
	ErrBadEps = errors.New("tsp: eps must be a non-negative number")

	// ErrUnsupportedHeuristic indicates an unknown local-search heuristic.
	ErrUnsupportedHeuristic = errors.New("tsp: unsupported heuristic")
)

// Unbounded is the default MaxIterations: refine until a local optimum.
const Unbounded = math.MaxInt

// Node is a location with a pairwise cost to other locations.
type Node[N any] interface {
	Distance(other N) float64
}

// Heuristic selects the local-search neighbourhood used by ApplyHeuristics.
type Heuristic uint8

const (
	// ThreeOpt tries the seven 3-opt reconnections of every cut triple.
	ThreeOpt Heuristic = iota

	// RelocateTwoOpt alternates single-node relocation and 2-opt reversal.
	RelocateTwoOpt
)

// String returns the CLI name of h.
func (h Heuristic) String() string {
	switch h {
	case ThreeOpt:
		return "three-opt"
	case RelocateTwoOpt:
		return "relocate-two-opt"
	default:
		return fmt.Sprintf("heuristic(%d)", uint8(h))
	}
}

// ParseHeuristic maps a CLI name back to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "three-opt", "3opt", "3-opt":
		return ThreeOpt, nil
	case "relocate-two-opt", "2opt", "2-opt":
		return RelocateTwoOpt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedHeuristic, s)
	}
}

// Options configures a Solver.
//
// MaxIterations     – number of sweeps allowed to accept a move; 0 disables refinement.
// Symmetric         – assume Distance(a, b) == Distance(b, a) and price moves by boundary arcs.
// BestImprovement   – apply the best move of a sweep instead of the first.
// ShuffleNeighborhood – scan cut triples in a seeded cyclic order.
// Seed              – RNG seed for ShuffleNeighborhood; 0 selects a fixed default.
// Eps               – a move is accepted only when Δ < −Eps.
// Heuristic         – local-search neighbourhood.
type Options struct {
	MaxIterations       int
	Symmetric           bool
	BestImprovement     bool
	ShuffleNeighborhood bool
	Seed                int64
	Eps                 float64
	Heuristic           Heuristic
}

// DefaultOptions returns unbounded, symmetric, best-improvement 3-opt with Eps = 1e-12.
func DefaultOptions() Options {
	return Options{
		MaxIterations:   Unbounded,
		Symmetric:       true,
		BestImprovement: true,
		Eps:             1e-12,
		Heuristic:       ThreeOpt,
	}
}
