// Package tsp - relocation and 2-opt local search on an anchored open path.
//
// relocateTwoOpt alternates two first-improvement passes:
//   - relocation: move a single node T[i] to another position p;
//   - 2-opt: reverse a segment T[i..k].
//
// Every candidate is assembled and priced by its full length, so the passes
// are valid for symmetric and asymmetric distances alike. Each accepted move
// counts as one iteration against MaxIterations.
//
// Complexity: O(n³) per pass (O(n²) candidates, O(n) pricing each).
package tsp

// relocateTwoOpt refines a copy of tour until neither pass finds a move.
func (s *Solver[N]) relocateTwoOpt(tour []N) ([]N, int) {
	var (
		n      = len(tour)
		cur    = append(make([]N, 0, n), tour...)
		buf    = make([]N, 0, n)
		curLen = s.Length(cur)
		moves  int
		ok     bool
	)
	for s.more(moves) {
		improved := false

		if buf, ok = s.relocatePass(cur, buf, curLen); ok {
			cur, buf = buf, cur
			curLen = s.Length(cur)
			moves++
			improved = true
		}
		if !s.more(moves) {
			break
		}
		if buf, ok = s.twoOptPass(cur, buf, curLen); ok {
			cur, buf = buf, cur
			curLen = s.Length(cur)
			moves++
			improved = true
		}
		if !improved {
			break
		}
	}

	return cur, moves
}

// relocatePass returns the first tour obtained by moving one node that is
// shorter than curLen by more than Eps. The candidate is built in buf.
func (s *Solver[N]) relocatePass(cur, buf []N, curLen float64) ([]N, bool) {
	var (
		n    = len(cur)
		i, p int
	)
	for i = 0; i < n; i++ {
		for p = 0; p < n; p++ {
			if p == i {
				continue
			}
			buf = relocate(buf[:0], cur, i, p)
			if s.Length(buf)-curLen < -s.opts.Eps {
				return buf, true
			}
		}
	}

	return buf, false
}

// twoOptPass returns the first tour obtained by reversing one segment that
// is shorter than curLen by more than Eps. The candidate is built in buf.
func (s *Solver[N]) twoOptPass(cur, buf []N, curLen float64) ([]N, bool) {
	var (
		n    = len(cur)
		i, k int
	)
	for i = 0; i < n-1; i++ {
		for k = i + 1; k < n; k++ {
			buf = reverseSegment(buf[:0], cur, i, k)
			if s.Length(buf)-curLen < -s.opts.Eps {
				return buf, true
			}
		}
	}

	return buf, false
}

// relocate appends to dst the tour t with t[i] removed and reinserted so
// that it ends up at index p.
func relocate[N any](dst, t []N, i, p int) []N {
	moved := t[i]
	var idx int
	for idx = 0; idx < len(t); idx++ {
		if idx == i {
			continue
		}
		if len(dst) == p {
			dst = append(dst, moved)
		}
		dst = append(dst, t[idx])
	}
	if len(dst) == p {
		dst = append(dst, moved)
	}

	return dst
}

// reverseSegment appends to dst the tour t with t[i..k] reversed.
func reverseSegment[N any](dst, t []N, i, k int) []N {
	dst = append(dst, t[:i]...)
	var idx int
	for idx = k; idx >= i; idx-- {
		dst = append(dst, t[idx])
	}

	return append(dst, t[k+1:]...)
}
