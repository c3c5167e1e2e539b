package pilot

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/geo"
)

// pathEnv holds what every node of one planning search shares.
type pathEnv struct {
	rules  game.Rules
	budget int // moves the search may plan
}

// pathNode is a partial flight explored by the stateful planner. The map is
// shared with the parent until a move connects to a station; plan holds the
// targets still to visit, in order.
type pathNode struct {
	env       *pathEnv
	prev      *pathNode
	dir       geo.Direction
	move      int
	pos       geo.Position
	coins     float64
	power     float64
	distance  float64
	coinsLost float64
	m         *game.Map
	plan      []geo.Position
}

// EquivalenceKey identifies nodes at the same position.
func (n *pathNode) EquivalenceKey() geo.Key { return n.pos.Key() }

// IsGoal reports whether every target is visited, the move budget is used up
// or the drone cannot afford another move.
func (n *pathNode) IsGoal() bool {
	return len(n.plan) == 0 || n.move >= n.env.budget || n.power < n.env.rules.PowerPerMove
}

// Compare prefers fewer remaining targets, then fewer coins lost, then a
// shorter flight to the next target.
func (n *pathNode) Compare(o *pathNode) int {
	if c := len(n.plan) - len(o.plan); c != 0 {
		return c
	}
	if c := cmp.Compare(n.coinsLost, o.coinsLost); c != 0 {
		return c
	}
	return cmp.Compare(n.expectedDistance(), o.expectedDistance())
}

func (n *pathNode) expectedDistance() float64 {
	if len(n.plan) == 0 {
		return n.distance
	}
	return n.distance + n.pos.Distance(n.plan[0])
}

// Children simulates one move in every direction that stays in the play area.
func (n *pathNode) Children() []*pathNode {
	rules := n.env.rules
	if n.power < rules.PowerPerMove {
		return nil
	}
	var (
		out   = make([]*pathNode, 0, geo.NumDirections)
		next  geo.Position
		child *pathNode
		m     *game.Map
		drone *game.Drone
		err   error
	)
	for _, dir := range geo.Directions() {
		next = n.pos.Next(dir, rules.MoveDistance)
		if !rules.InPlayArea(next) {
			continue
		}
		// Only a connecting move changes station balances.
		if m = n.m; m.Close(next, rules.CloseDistance) != nil {
			m = n.m.Clone()
		}
		if drone, err = game.NewDrone(n.pos, m, n.coins, n.power, rules); err != nil {
			continue
		}
		drone.Move(dir)

		child = &pathNode{
			env:       n.env,
			prev:      n,
			dir:       dir,
			move:      n.move + 1,
			pos:       drone.Position(),
			coins:     drone.Coins(),
			power:     drone.Power(),
			distance:  n.distance + rules.MoveDistance,
			coinsLost: n.coinsLost,
			m:         n.m,
			plan:      n.plan,
		}
		if s := drone.Map().Close(child.pos, rules.CloseDistance); s != nil {
			child.m = drone.Map()
			if i := slices.Index(n.plan, s.Position); i >= 0 {
				child.plan = slices.Delete(slices.Clone(n.plan), i, i+1)
			}
		}
		if lost := n.coins - child.coins; lost > 0 {
			child.coinsLost += lost
		}
		out = append(out, child)
	}

	return out
}

// steps walks back to the root and returns the planned moves in flight order.
func (n *pathNode) steps() []step {
	var out []step
	for cur := n; cur.prev != nil; cur = cur.prev {
		out = append(out, step{dir: cur.dir, from: cur.prev.pos.Key()})
	}
	slices.Reverse(out)

	return out
}
