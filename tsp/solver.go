package tsp

// Solver builds and refines tours over nodes of type N.
type Solver[N Node[N]] struct {
	opts       Options
	initial    N
	hasInitial bool
}

// NewSolver validates opts and returns a Solver without an initial node.
func NewSolver[N Node[N]](opts Options) (*Solver[N], error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Solver[N]{opts: opts}, nil
}

// Options returns a copy of the solver configuration.
func (s *Solver[N]) Options() Options { return s.opts }

// InitialNode returns the anchor; ok is false when none is set.
func (s *Solver[N]) InitialNode() (n N, ok bool) { return s.initial, s.hasInitial }

// SetInitialNode anchors subsequent tours at n.
func (s *Solver[N]) SetInitialNode(n N) {
	s.initial, s.hasInitial = n, true
}

// ClearInitialNode removes the anchor.
func (s *Solver[N]) ClearInitialNode() {
	var zero N
	s.initial, s.hasInitial = zero, false
}

// MaxIterations returns the refinement cap.
func (s *Solver[N]) MaxIterations() int { return s.opts.MaxIterations }

// SetMaxIterations changes the refinement cap; n must be non-negative.
func (s *Solver[N]) SetMaxIterations(n int) error {
	if n < 0 {
		return ErrBadMaxIterations
	}
	s.opts.MaxIterations = n

	return nil
}

// Symmetric reports whether boundary-arc pricing is used.
func (s *Solver[N]) Symmetric() bool { return s.opts.Symmetric }

// SetSymmetric switches between boundary-arc and full-length pricing.
func (s *Solver[N]) SetSymmetric(symmetric bool) { s.opts.Symmetric = symmetric }

// Solve returns ApplyHeuristics(NearestNeighbours(nodes)).
func (s *Solver[N]) Solve(nodes []N) []N {
	return s.ApplyHeuristics(s.NearestNeighbours(nodes))
}

// ApplyHeuristics refines tour with the configured heuristic and returns a new slice.
func (s *Solver[N]) ApplyHeuristics(tour []N) []N {
	out, _ := s.Improve(tour)
	return out
}

// Improve refines tour and also reports the number of accepted moves.
// Fewer than two nodes or MaxIterations == 0 yield an unchanged copy.
func (s *Solver[N]) Improve(tour []N) ([]N, int) {
	if len(tour) < 2 || s.opts.MaxIterations == 0 {
		return append(make([]N, 0, len(tour)), tour...), 0
	}
	switch s.opts.Heuristic {
	case RelocateTwoOpt:
		return s.relocateTwoOpt(tour)
	default:
		return s.threeOpt(tour)
	}
}

// Length returns the open-path length of tour, including the anchor edge.
func (s *Solver[N]) Length(tour []N) float64 {
	if len(tour) == 0 {
		return 0
	}
	var (
		total float64
		i     int
	)
	if s.hasInitial {
		total = s.initial.Distance(tour[0])
	}
	for i = 1; i < len(tour); i++ {
		total += tour[i-1].Distance(tour[i])
	}

	return total
}

// pred returns the node preceding position i, which for i == 0 is the anchor.
func (s *Solver[N]) pred(tour []N, i int) (N, bool) {
	if i > 0 {
		return tour[i-1], true
	}
	return s.initial, s.hasInitial
}

// more reports whether another accepting sweep is allowed after moves accepted ones.
func (s *Solver[N]) more(moves int) bool {
	return s.opts.MaxIterations == Unbounded || moves < s.opts.MaxIterations
}
