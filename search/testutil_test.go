package search_test

import (
	"cmp"
	"slices"
)

// edge is a weighted arc of a test graph.
type edge struct {
	to string
	w  float64
}

// graph is a small directed test graph with a goal set.
type graph struct {
	edges map[string][]edge
	goals map[string]bool
}

func newGraph(goals ...string) *graph {
	g := &graph{edges: make(map[string][]edge), goals: make(map[string]bool)}
	for _, v := range goals {
		g.goals[v] = true
	}
	return g
}

func (g *graph) add(from, to string, w float64) *graph {
	g.edges[from] = append(g.edges[from], edge{to: to, w: w})
	return g
}

// pathNode is a partial path ending at vertex at; it is keyed by that vertex.
type pathNode struct {
	g      *graph
	at     string
	cost   float64
	parent *pathNode
}

func start(g *graph, at string) *pathNode { return &pathNode{g: g, at: at} }

func (n *pathNode) Compare(o *pathNode) int { return cmp.Compare(n.cost, o.cost) }

func (n *pathNode) IsGoal() bool { return n.g.goals[n.at] }

func (n *pathNode) Children() []*pathNode {
	out := make([]*pathNode, 0, len(n.g.edges[n.at]))
	for _, e := range n.g.edges[n.at] {
		out = append(out, &pathNode{g: n.g, at: e.to, cost: n.cost + e.w, parent: n})
	}
	return out
}

func (n *pathNode) EquivalenceKey() string { return n.at }

// path walks parent links back to the start.
func (n *pathNode) path() []string {
	var out []string
	for p := n; p != nil; p = p.parent {
		out = append(out, p.at)
	}
	slices.Reverse(out)
	return out
}

// numNode is a comparable node: reach 10 from 1 with +1 and *2 steps.
type numNode struct {
	v, steps int
}

func (n numNode) Compare(o numNode) int { return cmp.Compare(n.steps, o.steps) }

func (n numNode) IsGoal() bool { return n.v == 10 }

func (n numNode) Children() []numNode {
	if n.v > 20 {
		return nil
	}
	return []numNode{{n.v + 1, n.steps + 1}, {n.v * 2, n.steps + 1}}
}
