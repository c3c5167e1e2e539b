// Package search provides a generic best-first (uniform-cost style) search
// engine with a bounded frontier and a dominance-aware explored set.
//
// Overview:
//
//   - A problem supplies its own node type N implementing Node[N]: a total
//     order on cost (Compare), a goal predicate (IsGoal) and child enumeration
//     (Children). Paths are reconstructed by the caller through parent links
//     carried by the node itself.
//   - Deduplication uses an explicit equivalence key func(N) K, kept separate
//     from the cost order. Two nodes with the same key represent the same
//     effective state reached differently; only the cheaper one is kept.
//   - Constructors:
//     New(key, opts...)       explicit key function;
//     NewKeyed(opts...)       N implements Keyed[K] (EquivalenceKey);
//     NewIdentity(opts...)    N is comparable, identity is the equivalence.
//
// Algorithm:
//
//  1. Seed the frontier (a prioritydeque.Deque with capacity MaxFrontierSize)
//     with the start node.
//  2. Remove the least node. A goal ends the search successfully.
//  3. A node whose equivalent is already explored at no greater cost is
//     skipped. Otherwise it is recorded in the explored set, replacing its
//     costlier equivalent; the costliest explored entries are evicted while
//     the set exceeds MaxExploredSize.
//  4. Each child is pushed at the back of the frontier unless an equivalent
//     explored node is not strictly worse than it.
//  5. An empty frontier ends the search with no solution.
//
// Ties between equal-cost nodes are broken by frontier insertion order (FIFO),
// so the exploration order is deterministic for deterministic Children.
//
// Bounds:
//
//	Both bounds default to Unbounded. They are soft limits: entries beyond a
//	bound are evicted silently, trading optimality for memory. With both
//	bounds unbounded and strictly positive edge costs the first goal removed
//	from the frontier is a least-cost goal.
//
// Errors (sentinel):
//
//   - ErrBadFrontierSize:  MaxFrontierSize < 1.
//   - ErrBadExploredSize:  MaxExploredSize < 0.
//   - ErrNilKeyFunc:       New called with a nil key function.
//
// Exhaustion is not an error: Search returns (zero, false).
//
// Thread safety:
//
//	A Searcher keeps no per-run state; every Search or Run owns its frontier
//	and explored set. Concurrent runs are safe as long as the bounds are not
//	changed concurrently.
package search
