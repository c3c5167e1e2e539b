// Package tsp orders a set of locations into a short visiting sequence.
//
// Overview:
//
//   - Locations are any type N implementing Node[N] (a pairwise Distance).
//     The distance need not be a metric; Options.Symmetric states whether
//     Distance(a, b) == Distance(b, a) may be assumed.
//   - A tour is an open path over the given nodes. An optional initial node
//     anchors it: the anchor is not part of the returned slice but contributes
//     the first edge (anchor → tour[0]) to every length computation.
//   - Solve runs two phases, each callable on its own:
//     NearestNeighbours builds a greedy tour in O(n²);
//     ApplyHeuristics refines it by local search until no improving move
//     exists or Options.MaxIterations sweeps have accepted a move.
//
// Heuristics:
//
//   - ThreeOpt (default): for every triple 0 ≤ i < j < k ≤ n the tour is cut
//     into P = T[:i], S1 = T[i:j], S2 = T[j:k] and S3 = T[k:], and the seven
//     reconnections P + X + Y + S3 with X, Y drawn from S1, S2 and their
//     reversals are tried. Symmetric mode computes Δ from the six boundary
//     nodes only; a missing predecessor (no anchor, i = 0) or successor
//     (k = n) contributes nothing. Asymmetric mode assembles every candidate
//     and recomputes the full length.
//   - RelocateTwoOpt: alternating single-node relocation and segment reversal,
//     each candidate priced by a full length recomputation.
//
//	Every accepted move shortens the tour by more than Options.Eps, so the
//	search is monotone and cannot cycle.
//
// Policies:
//
//   - BestImprovement (default): scan the whole neighbourhood, apply the best move.
//   - First-improvement: apply the first improving move and restart the sweep.
//   - ShuffleNeighborhood: scan triples in a seeded cyclic order (Options.Seed).
//
// Degenerate input:
//
//	Fewer than two nodes, or MaxIterations == 0, return a copy of the input.
//	Input slices are never mutated.
//
// Errors (sentinel):
//
//   - ErrBadMaxIterations:     MaxIterations < 0.
//   - ErrBadEps:               Eps < 0 or NaN.
//   - ErrUnsupportedHeuristic: unknown Heuristic value or name.
//
// Complexity:
//
//   - NearestNeighbours: O(n²).
//   - ThreeOpt: O(n³) boundary evaluations per sweep (symmetric);
//     O(n⁴) per sweep when asymmetric.
//   - RelocateTwoOpt: O(n³) per pass.
//
// Thread safety:
//
//	A Solver is not safe for concurrent mutation; concurrent Solve calls on
//	an unchanged Solver are safe when ShuffleNeighborhood is off.
package tsp
