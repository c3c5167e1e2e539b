// Package tsp_test checks nearest-neighbour construction and local search:
// monotonicity against the greedy tour, idempotence at a local optimum,
// degenerate inputs, the anchored unit square and option validation.
package tsp_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powergrab/tsp"
)

func newSolver[N tsp.Node[N]](t *testing.T, mutate func(*tsp.Options)) *tsp.Solver[N] {
	t.Helper()
	opts := tsp.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	s, err := tsp.NewSolver[N](opts)
	require.NoError(t, err)
	return s
}

// ------------------------------------------------------------------------
// Nearest neighbours
// ------------------------------------------------------------------------

func TestNearestNeighbours_UnitSquare(t *testing.T) {
	s := newSolver[pt](t, nil)
	s.SetInitialNode(pt{0, 0})
	nodes := []pt{{1, 0}, {1, 1}, {0, 1}}

	nn := s.NearestNeighbours(nodes)
	assert.Equal(t, []pt{{1, 0}, {1, 1}, {0, 1}}, nn)
	assert.InDelta(t, 3.0, s.Length(nn), epsLen)

	refined, moves := s.Improve(nn)
	assert.Zero(t, moves, "an optimal tour admits no improving move")
	assert.Equal(t, nn, refined)
}

func TestNearestNeighbours_TiesGoToInputOrder(t *testing.T) {
	s := newSolver[pt](t, nil)
	s.SetInitialNode(pt{0, 0})
	assert.Equal(t, []pt{{0, 1}, {1, 1}, {1, 0}}, s.NearestNeighbours([]pt{{0, 1}, {1, 0}, {1, 1}}))
}

func TestNearestNeighbours_WithoutAnchorStartsAtFirst(t *testing.T) {
	s := newSolver[pt](t, nil)
	nodes := []pt{{5, 0}, {0, 0}, {4, 0}, {1, 0}}
	before := slices.Clone(nodes)

	nn := s.NearestNeighbours(nodes)
	assert.Equal(t, []pt{{5, 0}, {4, 0}, {1, 0}, {0, 0}}, nn)
	assert.Equal(t, before, nodes, "input is not mutated")
	assert.InDelta(t, 5.0, s.Length(nn), epsLen)
}

func TestNearestNeighbours_Empty(t *testing.T) {
	s := newSolver[pt](t, nil)
	assert.Empty(t, s.NearestNeighbours(nil))
	assert.Empty(t, s.Solve(nil))
	assert.Zero(t, s.Length(nil))
}

// ------------------------------------------------------------------------
// Local search
// ------------------------------------------------------------------------

func TestThreeOpt_FindsCollinearOptimum(t *testing.T) {
	s := newSolver[pt](t, nil)
	s.SetInitialNode(pt{0, 0})
	nodes := []pt{{1, 0}, {-1.1, 0}, {3, 0}}

	nn := s.NearestNeighbours(nodes)
	require.Equal(t, []pt{{1, 0}, {3, 0}, {-1.1, 0}}, nn)
	require.InDelta(t, 7.1, s.Length(nn), epsLen)

	out, moves := s.Improve(nn)
	assert.Equal(t, 1, moves)
	assert.Equal(t, []pt{{-1.1, 0}, {1, 0}, {3, 0}}, out)
	assert.InDelta(t, 5.2, s.Length(out), epsLen)
}

func TestImprove_NeverWorseThanNearestNeighbours(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	caps := []int{0, 1, 2, tsp.Unbounded}
	for round := 0; round < 40; round++ {
		nodes := randomPoints(rng, 2+rng.Intn(14))
		for _, maxIt := range caps {
			for _, best := range []bool{true, false} {
				for _, h := range []tsp.Heuristic{tsp.ThreeOpt, tsp.RelocateTwoOpt} {
					s := newSolver[pt](t, func(o *tsp.Options) {
						o.MaxIterations = maxIt
						o.BestImprovement = best
						o.Heuristic = h
					})
					if round%2 == 0 {
						s.SetInitialNode(pt{0.5, 0.5})
					}
					nn := s.NearestNeighbours(nodes)
					out, moves := s.Improve(nn)

					require.LessOrEqual(t, s.Length(out), s.Length(nn)+epsLen)
					require.ElementsMatch(t, nn, out, "refinement permutes the tour")
					if maxIt != tsp.Unbounded {
						require.LessOrEqual(t, moves, maxIt)
					}
					if moves > 0 {
						require.Less(t, s.Length(out), s.Length(nn))
					}
				}
			}
		}
	}
}

func TestImprove_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 20; round++ {
		nodes := randomPoints(rng, 3+rng.Intn(12))
		for _, h := range []tsp.Heuristic{tsp.ThreeOpt, tsp.RelocateTwoOpt} {
			s := newSolver[pt](t, func(o *tsp.Options) { o.Heuristic = h })
			s.SetInitialNode(pt{0, 0})

			once := s.Solve(nodes)
			twice, moves := s.Improve(once)
			require.Zero(t, moves, "round %d %s", round, h)
			require.Equal(t, once, twice)
		}
	}
}

func TestImprove_ShuffledScanStillMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	nodes := randomPoints(rng, 12)
	s := newSolver[pt](t, func(o *tsp.Options) {
		o.ShuffleNeighborhood = true
		o.Seed = 42
		o.BestImprovement = false
	})
	nn := s.NearestNeighbours(nodes)
	a := s.ApplyHeuristics(nn)
	b := s.ApplyHeuristics(nn)

	assert.LessOrEqual(t, s.Length(a), s.Length(nn)+epsLen)
	assert.Equal(t, a, b, "same seed, same scan order")
}

func TestImprove_Asymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 20; round++ {
		nodes := randomHills(rng, 2+rng.Intn(9))
		for _, h := range []tsp.Heuristic{tsp.ThreeOpt, tsp.RelocateTwoOpt} {
			s := newSolver[hill](t, func(o *tsp.Options) {
				o.Symmetric = false
				o.Heuristic = h
			})
			s.SetInitialNode(hill{0, 0})

			nn := s.NearestNeighbours(nodes)
			out := s.ApplyHeuristics(nn)
			require.LessOrEqual(t, s.Length(out), s.Length(nn)+epsLen)
			require.ElementsMatch(t, nn, out)

			_, moves := s.Improve(out)
			require.Zero(t, moves)
		}
	}
}

func TestImprove_Degenerate(t *testing.T) {
	s := newSolver[pt](t, nil)
	s.SetInitialNode(pt{9, 9})

	out, moves := s.Improve(nil)
	assert.Empty(t, out)
	assert.Zero(t, moves)

	out, moves = s.Improve([]pt{{1, 1}})
	assert.Equal(t, []pt{{1, 1}}, out)
	assert.Zero(t, moves)

	require.NoError(t, s.SetMaxIterations(0))
	in := []pt{{1, 0}, {3, 0}, {2, 0}}
	out, moves = s.Improve(in)
	assert.Equal(t, in, out)
	assert.Zero(t, moves)
	out[0] = pt{7, 7}
	assert.Equal(t, pt{1, 0}, in[0], "a copy is returned")
}

// ------------------------------------------------------------------------
// Configuration
// ------------------------------------------------------------------------

func TestNewSolver_Validation(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.MaxIterations = -1
	_, err := tsp.NewSolver[pt](opts)
	assert.ErrorIs(t, err, tsp.ErrBadMaxIterations)

	opts = tsp.DefaultOptions()
	opts.Eps = -1
	_, err = tsp.NewSolver[pt](opts)
	assert.ErrorIs(t, err, tsp.ErrBadEps)

	opts = tsp.DefaultOptions()
	opts.Heuristic = tsp.Heuristic(9)
	_, err = tsp.NewSolver[pt](opts)
	assert.ErrorIs(t, err, tsp.ErrUnsupportedHeuristic)
}

func TestSolver_Accessors(t *testing.T) {
	s := newSolver[pt](t, nil)
	assert.Equal(t, tsp.Unbounded, s.MaxIterations())
	assert.True(t, s.Symmetric())

	_, ok := s.InitialNode()
	assert.False(t, ok)
	s.SetInitialNode(pt{1, 2})
	n, ok := s.InitialNode()
	assert.True(t, ok)
	assert.Equal(t, pt{1, 2}, n)
	s.ClearInitialNode()
	_, ok = s.InitialNode()
	assert.False(t, ok)

	assert.ErrorIs(t, s.SetMaxIterations(-3), tsp.ErrBadMaxIterations)
	require.NoError(t, s.SetMaxIterations(7))
	assert.Equal(t, 7, s.MaxIterations())

	s.SetSymmetric(false)
	assert.False(t, s.Symmetric())
	assert.False(t, s.Options().Symmetric)
}

func TestParseHeuristic(t *testing.T) {
	h, err := tsp.ParseHeuristic("three-opt")
	require.NoError(t, err)
	assert.Equal(t, tsp.ThreeOpt, h)

	h, err = tsp.ParseHeuristic(tsp.RelocateTwoOpt.String())
	require.NoError(t, err)
	assert.Equal(t, tsp.RelocateTwoOpt, h)

	_, err = tsp.ParseHeuristic("simulated-annealing")
	assert.ErrorIs(t, err, tsp.ErrUnsupportedHeuristic)
}
