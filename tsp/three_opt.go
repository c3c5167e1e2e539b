// Package tsp - 3-opt local search on an anchored open path.
//
// For a cut triple 0 ≤ i < j < k ≤ n the tour splits into
// P = T[:i], S1 = T[i:j], S2 = T[j:k], S3 = T[k:]. The seven candidates are
// P + X + Y + S3 with (X, Y) ∈ {S1, S1R, S2, S2R}² minus the identity and
// minus pairs that repeat a segment.
//
// Symmetric Δ uses the boundary nodes a = pred(i), b = T[i], c = T[j-1],
// d = T[j], e = T[k-1], f = T[k]:
//
//	Δ = [a→first(X)] + [last(X)→first(Y)] + [last(Y)→f] − [a→b] − [c→d] − [e→f]
//
// where terms touching a missing a (no anchor, i = 0) or f (k = n) vanish.
// Internal arcs of a reversed segment keep their length by symmetry.
// Asymmetric Δ is the full length of the assembled candidate minus the
// current length.
package tsp

import "math/rand"

// segKind enumerates segment variants for 3-opt reconnections.
type segKind uint8

const (
	segS1  segKind = iota // S1 = T[i:j] in forward order
	segS1R                // reversed S1
	segS2                 // S2 = T[j:k] in forward order
	segS2R                // reversed S2
)

// The seven (X, Y) reconnections.
var (
	tryX = [...]segKind{segS1R, segS1, segS2R, segS1R, segS2, segS2R, segS2}
	tryY = [...]segKind{segS2, segS2R, segS1R, segS2R, segS1R, segS1, segS1}
)

// threeMove is a candidate or accepted 3-opt move.
type threeMove struct {
	i, j, k int
	x, y    segKind
	delta   float64
}

// threeOpt refines a copy of tour until no move improves it by more than
// Eps or MaxIterations sweeps have accepted a move.
func (s *Solver[N]) threeOpt(tour []N) ([]N, int) {
	var (
		n      = len(tour)
		cur    = append(make([]N, 0, n), tour...)
		buf    = make([]N, 0, n)
		curLen = s.Length(cur)
		moves  int
		rng    *rand.Rand
	)
	if s.opts.ShuffleNeighborhood {
		rng = rngFromSeed(s.opts.Seed)
	}

	for s.more(moves) {
		mv, found := s.sweep(cur, &buf, curLen, rng)
		if !found {
			break
		}
		buf = assemble3Opt(buf[:0], cur, mv.i, mv.j, mv.k, mv.x, mv.y)
		cur, buf = buf, cur
		curLen = s.Length(cur)
		moves++
	}

	return cur, moves
}

// sweep scans every cut triple and returns the move to apply: the first
// improving one, or the best one under BestImprovement.
func (s *Solver[N]) sweep(cur []N, buf *[]N, curLen float64, rng *rand.Rand) (threeMove, bool) {
	var (
		n     = len(cur)
		limit = -s.opts.Eps
		best  threeMove
		found bool
	)
	var (
		ii, jj, kk, m    int
		i, j, k          int
		spanJ, spanK     int
		offI, offJ, offK int
		delta            float64
	)
	offI = offset(rng, n-1)
	for ii = 0; ii < n-1; ii++ {
		i = cyclic(0, n-1, offI, ii) // i ∈ [0, n-2]

		spanJ = n - 1 - i // j ∈ [i+1, n-1]
		offJ = offset(rng, spanJ)
		for jj = 0; jj < spanJ; jj++ {
			j = cyclic(i+1, spanJ, offJ, jj)

			spanK = n - j // k ∈ [j+1, n]
			offK = offset(rng, spanK)
			for kk = 0; kk < spanK; kk++ {
				k = cyclic(j+1, spanK, offK, kk)

				for m = 0; m < len(tryX); m++ {
					if s.opts.Symmetric {
						delta = s.symmetricDelta(cur, i, j, k, tryX[m], tryY[m])
					} else {
						*buf = assemble3Opt((*buf)[:0], cur, i, j, k, tryX[m], tryY[m])
						delta = s.Length(*buf) - curLen
					}
					if delta >= limit {
						continue
					}
					if !s.opts.BestImprovement {
						return threeMove{i, j, k, tryX[m], tryY[m], delta}, true
					}
					if !found || delta < best.delta {
						best, found = threeMove{i, j, k, tryX[m], tryY[m], delta}, true
					}
				}
			}
		}
	}

	return best, found
}

// symmetricDelta prices a reconnection from the boundary arcs alone.
func (s *Solver[N]) symmetricDelta(t []N, i, j, k int, x, y segKind) float64 {
	var (
		b, c, d, e    = t[i], t[j-1], t[j], t[k-1]
		xFirst, xLast = segFirstLast(x, b, c, d, e)
		yFirst, yLast = segFirstLast(y, b, c, d, e)
	)
	var removed, added float64
	removed = c.Distance(d)
	added = xLast.Distance(yFirst)
	if a, ok := s.pred(t, i); ok {
		removed += a.Distance(b)
		added += a.Distance(xFirst)
	}
	if k < len(t) {
		f := t[k]
		removed += e.Distance(f)
		added += yLast.Distance(f)
	}

	return added - removed
}

// segFirstLast maps a segment kind to its endpoints given b = T[i],
// c = T[j-1], d = T[j], e = T[k-1].
func segFirstLast[N any](kind segKind, b, c, d, e N) (first, last N) {
	switch kind {
	case segS1:
		return b, c
	case segS1R:
		return c, b
	case segS2:
		return d, e
	default: // segS2R
		return e, d
	}
}

// assemble3Opt appends P + X + Y + S3 to dst and returns it.
func assemble3Opt[N any](dst, t []N, i, j, k int, x, y segKind) []N {
	dst = append(dst, t[:i]...)
	dst = emitSegment(dst, t, i, j, k, x)
	dst = emitSegment(dst, t, i, j, k, y)

	return append(dst, t[k:]...)
}

// emitSegment appends the segment selected by kind, reversed when required.
func emitSegment[N any](dst, t []N, i, j, k int, kind segKind) []N {
	var (
		seg []N
		rev bool
	)
	switch kind {
	case segS1:
		seg = t[i:j]
	case segS1R:
		seg, rev = t[i:j], true
	case segS2:
		seg = t[j:k]
	default:
		seg, rev = t[j:k], true
	}
	if !rev {
		return append(dst, seg...)
	}
	var idx int
	for idx = len(seg) - 1; idx >= 0; idx-- {
		dst = append(dst, seg[idx])
	}

	return dst
}
