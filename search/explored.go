package search

import "github.com/katalvlaran/powergrab/prioritydeque"

// exploredItem is one explored-set member; seq makes items distinct in the index.
type exploredItem[N Node[N], K comparable] struct {
	node N
	key  K
	seq  uint64
}

// explored maps each equivalence key to the cheapest node expanded for it.
// When bounded, an ordered index tracks members by cost so the costliest
// can be evicted.
type explored[N Node[N], K comparable] struct {
	best  map[K]exploredItem[N, K]
	index *prioritydeque.Deque[exploredItem[N, K]] // nil when unbounded
	max   int
	seq   uint64
}

func newExplored[N Node[N], K comparable](bound int) *explored[N, K] {
	e := &explored[N, K]{
		best: make(map[K]exploredItem[N, K]),
		max:  bound,
	}
	if bound != Unbounded {
		e.index = prioritydeque.NewFunc(func(a, b exploredItem[N, K]) int {
			if c := a.node.Compare(b.node); c != 0 {
				return c
			}
			switch {
			case a.seq < b.seq:
				return -1
			case a.seq > b.seq:
				return 1
			default:
				return 0
			}
		})
	}

	return e
}

// dominates reports whether an explored node equivalent to n costs no more than n.
func (e *explored[N, K]) dominates(k K, n N) bool {
	old, ok := e.best[k]
	return ok && old.node.Compare(n) <= 0
}

// record stores n as the representative of k, replacing a costlier one, then
// evicts the costliest members while the set exceeds its bound.
func (e *explored[N, K]) record(k K, n N) {
	if old, ok := e.best[k]; ok {
		if old.node.Compare(n) <= 0 {
			return
		}
		if e.index != nil {
			e.index.RemoveFirstOccurrence(old)
		}
	}
	e.seq++
	it := exploredItem[N, K]{node: n, key: k, seq: e.seq}
	e.best[k] = it
	if e.index == nil {
		return
	}
	_ = e.index.PushBack(it)

	var (
		worst exploredItem[N, K]
		ok    bool
	)
	for e.index.Len() > e.max {
		if worst, ok = e.index.PollLast(); !ok {
			break
		}
		delete(e.best, worst.key)
	}
}

// size returns the number of explored equivalence classes.
func (e *explored[N, K]) size() int { return len(e.best) }
