package tsp_test

import (
	"math"
	"math/rand"
)

// pt is a planar point with Euclidean distance.
type pt struct{ x, y float64 }

func (p pt) Distance(o pt) float64 { return math.Hypot(p.x-o.x, p.y-o.y) }

// hill is a planar point whose distance charges extra for climbing in y,
// so Distance(a, b) != Distance(b, a) in general.
type hill struct{ x, y float64 }

func (h hill) Distance(o hill) float64 {
	return math.Hypot(h.x-o.x, h.y-o.y) + 0.75*math.Max(0, o.y-h.y)
}

// randomPoints returns n deterministic points in the unit square.
func randomPoints(rng *rand.Rand, n int) []pt {
	out := make([]pt, n)
	for i := range out {
		out[i] = pt{rng.Float64(), rng.Float64()}
	}
	return out
}

// randomHills returns n deterministic asymmetric points.
func randomHills(rng *rand.Rand, n int) []hill {
	out := make([]hill, n)
	for i := range out {
		out[i] = hill{rng.Float64(), rng.Float64()}
	}
	return out
}

// epsLen absorbs floating-point noise when comparing tour lengths.
const epsLen = 1e-9
