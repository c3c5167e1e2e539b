package search

import (
	"reflect"

	"github.com/katalvlaran/powergrab/prioritydeque"
)

// Searcher runs best-first searches over nodes of type N deduplicated by
// equivalence keys of type K.
type Searcher[N Node[N], K comparable] struct {
	key         func(N) K
	maxFrontier int
	maxExplored int
}

// New returns a Searcher that uses key as the equivalence function.
// Invalid options or a nil key return an error.
func New[N Node[N], K comparable](key func(N) K, opts ...Option) (*Searcher[N, K], error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	cfg := defaultConfig()
	var opt Option
	for _, opt = range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Searcher[N, K]{
		key:         key,
		maxFrontier: cfg.maxFrontier,
		maxExplored: cfg.maxExplored,
	}, nil
}

// NewKeyed returns a Searcher using the nodes' own EquivalenceKey.
func NewKeyed[N KeyedNode[N, K], K comparable](opts ...Option) (*Searcher[N, K], error) {
	return New[N, K](func(n N) K { return n.EquivalenceKey() }, opts...)
}

// NewIdentity returns a Searcher in which a node is only equivalent to itself.
func NewIdentity[N IdentityNode[N]](opts ...Option) (*Searcher[N, N], error) {
	return New[N, N](func(n N) N { return n }, opts...)
}

// MaxFrontierSize returns the frontier bound.
func (s *Searcher[N, K]) MaxFrontierSize() int { return s.maxFrontier }

// SetMaxFrontierSize changes the frontier bound used by later runs.
func (s *Searcher[N, K]) SetMaxFrontierSize(n int) error {
	if n < 1 {
		return ErrBadFrontierSize
	}
	s.maxFrontier = n

	return nil
}

// MaxExploredSize returns the explored-set bound.
func (s *Searcher[N, K]) MaxExploredSize() int { return s.maxExplored }

// SetMaxExploredSize changes the explored-set bound used by later runs.
func (s *Searcher[N, K]) SetMaxExploredSize(n int) error {
	if n < 0 {
		return ErrBadExploredSize
	}
	s.maxExplored = n

	return nil
}

// Search returns the first goal node removed from the frontier, or
// (zero, false) when the frontier empties. A nil start finds nothing.
func (s *Searcher[N, K]) Search(start N) (N, bool) {
	res := s.Run(start)
	return res.Node, res.Found
}

// Run performs the same search as Search and reports diagnostic counters.
func (s *Searcher[N, K]) Run(start N) Result[N] {
	r := &runner[N, K]{
		key: s.key,
		frontier: prioritydeque.NewFunc(
			func(a, b N) int { return a.Compare(b) },
			prioritydeque.WithMaxSize(s.maxFrontier),
		),
		explored: newExplored[N, K](s.maxExplored),
	}

	return r.run(start)
}

// runner holds the mutable state of a single search.
type runner[N Node[N], K comparable] struct {
	key      func(N) K
	frontier *prioritydeque.Deque[N]
	explored *explored[N, K]
	res      Result[N]
}

func (r *runner[N, K]) run(start N) Result[N] {
	// 1) Seed the frontier.
	if isNil(start) {
		return r.res
	}
	_ = r.frontier.PushBack(start)

	// 2) Expand the cheapest node until a goal surfaces or the frontier empties.
	var (
		node, child N
		k           K
		ok          bool
	)
	for {
		node, ok = r.frontier.PollFirst()
		if !ok {
			return r.res
		}
		if node.IsGoal() {
			r.res.Node, r.res.Found = node, true
			return r.res
		}

		// 3) Skip stale frontier entries already dominated by an explored equivalent.
		k = r.key(node)
		if r.explored.dominates(k, node) {
			r.res.Pruned++
			continue
		}
		r.explored.record(k, node)
		r.res.Expanded++

		// 4) Queue children not dominated by an explored equivalent.
		for _, child = range node.Children() {
			if isNil(child) {
				continue
			}
			r.res.Generated++
			if r.explored.dominates(r.key(child), child) {
				r.res.Pruned++
				continue
			}
			_ = r.frontier.PushBack(child)
		}
	}
}

// isNil reports whether v is a nil interface or a nil value of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
