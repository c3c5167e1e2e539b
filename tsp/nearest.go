package tsp

// NearestNeighbours builds a tour greedily: starting from the initial node
// (or from nodes[0] when no anchor is set) it repeatedly appends the closest
// remaining node. Ties go to the earliest node in input order.
//
// Complexity: O(n²) time, O(n) space. nodes is not mutated.
func (s *Solver[N]) NearestNeighbours(nodes []N) []N {
	out := make([]N, 0, len(nodes))
	if len(nodes) == 0 {
		return out
	}

	// 1) Pick the starting point and the pool of remaining nodes.
	remaining := append(make([]N, 0, len(nodes)), nodes...)
	var last N
	if s.hasInitial {
		last = s.initial
	} else {
		last = remaining[0]
		out = append(out, last)
		remaining = remaining[1:]
	}

	// 2) Greedily append the closest remaining node.
	var (
		best    int
		bestD   float64
		d       float64
		i       int
		current N
	)
	for len(remaining) > 0 {
		best, bestD = 0, last.Distance(remaining[0])
		for i = 1; i < len(remaining); i++ {
			current = remaining[i]
			if d = last.Distance(current); d < bestD {
				best, bestD = i, d
			}
		}
		last = remaining[best]
		out = append(out, last)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return out
}
