package pilot

import (
	"math"

	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/geo"
	"github.com/katalvlaran/powergrab/search"
	"github.com/katalvlaran/powergrab/tsp"
)

// Stateful plans a route through every positive station and replays it.
type Stateful struct {
	maxMoves int
	bound    int
	steps    []step
}

// step is one planned move: the direction and where the drone must be before taking it.
type step struct {
	dir  geo.Direction
	from geo.Key
}

// NewStateful returns a planner for flights of maxMoves moves whose search
// keeps at most bound frontier and explored nodes. A bound below 1 selects
// DefaultSearchBound.
func NewStateful(maxMoves, bound int) *Stateful {
	if bound < 1 {
		bound = DefaultSearchBound
	}
	return &Stateful{maxMoves: maxMoves, bound: bound}
}

// Name returns "stateful".
func (p *Stateful) Name() string { return NameStateful }

// Pending returns the number of planned moves not yet handed out.
func (p *Stateful) Pending() int { return len(p.steps) }

// Choose returns the next planned direction, replanning first when no plan is
// left or the drone is not where the plan expects it.
func (p *Stateful) Choose(d *game.Drone) geo.Direction {
	if len(p.steps) > 0 && p.steps[0].from != d.Position().Key() {
		p.steps = nil
	}
	if len(p.steps) == 0 {
		p.steps = p.plan(d)
	}
	if len(p.steps) > 0 {
		next := p.steps[0]
		p.steps = p.steps[1:]
		return next.dir
	}

	return awayFromNegativity(d)
}

// plan orders the positive stations and searches for the moves that collect them.
func (p *Stateful) plan(d *game.Drone) []step {
	var (
		positive = d.Map().Positive()
		targets  = make([]geo.Position, 0, len(positive))
	)
	for _, s := range positive {
		targets = append(targets, s.Position)
	}
	if len(targets) == 0 {
		return nil
	}

	// 1) Visiting order: nearest neighbour refined by 3-opt, one sweep per target.
	opts := tsp.DefaultOptions()
	opts.MaxIterations = len(targets)
	solver, err := tsp.NewSolver[geo.Position](opts)
	if err != nil {
		return nil
	}
	solver.SetInitialNode(d.Position())
	order := solver.Solve(targets)

	// 2) Move sequence: best-first search over positions.
	searcher, err := search.NewKeyed[*pathNode, geo.Key](search.WithMaxSizes(p.bound))
	if err != nil {
		return nil
	}
	env := &pathEnv{rules: d.Rules(), budget: p.budget(d)}
	goal, ok := searcher.Search(&pathNode{
		env:   env,
		pos:   d.Position(),
		coins: d.Coins(),
		power: d.Power(),
		m:     d.Map(),
		plan:  order,
	})
	if !ok {
		return nil
	}

	return goal.steps()
}

// budget returns the moves left in the flight, or an unlimited budget when
// the pilot was built without one.
func (p *Stateful) budget(d *game.Drone) int {
	if p.maxMoves <= 0 {
		return math.MaxInt
	}
	return max(p.maxMoves-d.Moves(), 0)
}

// awayFromNegativity returns the legal direction that minimises the summed
// inverse distance to negative stations, weighting the one it would connect
// to by 1e9 plus its debt.
func awayFromNegativity(d *game.Drone) geo.Direction {
	var (
		rules     = d.Rules()
		best      = geo.N
		bestScore = math.Inf(1)
		next      geo.Position
		near      *game.Station
		score     float64
		weight    float64
	)
	for _, dir := range legal(d) {
		next = d.Position().Next(dir, rules.MoveDistance)
		near = d.Map().Close(next, rules.CloseDistance)
		score = 0
		for _, s := range d.Map().Stations {
			if !s.Negative() {
				continue
			}
			weight = 1
			if s == near {
				weight = 1e9 - s.Coins
			}
			score += weight / (1e-9 + s.Position.Distance(next))
		}
		if score < bestScore {
			best, bestScore = dir, score
		}
	}

	return best
}
