package tsp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y float64 }

func (p point) Distance(o point) float64 { return math.Hypot(p.x-o.x, p.y-o.y) }

// TestSymmetricDelta_MatchesFullLength checks, for every triple and every
// reconnection on small tours, that the boundary Δ equals the change in the
// recomputed length, with and without an anchor.
func TestSymmetricDelta_MatchesFullLength(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for n := 2; n <= 6; n++ {
		for round := 0; round < 10; round++ {
			tour := make([]point, n)
			for i := range tour {
				tour[i] = point{rng.Float64() * 10, rng.Float64() * 10}
			}
			for _, anchored := range []bool{false, true} {
				s, err := NewSolver[point](DefaultOptions())
				require.NoError(t, err)
				if anchored {
					s.SetInitialNode(point{rng.Float64() * 10, rng.Float64() * 10})
				}
				base := s.Length(tour)

				var buf []point
				for i := 0; i < n-1; i++ {
					for j := i + 1; j < n; j++ {
						for k := j + 1; k <= n; k++ {
							for m := range tryX {
								buf = assemble3Opt(buf[:0], tour, i, j, k, tryX[m], tryY[m])
								require.Len(t, buf, n)
								want := s.Length(buf) - base
								got := s.symmetricDelta(tour, i, j, k, tryX[m], tryY[m])
								require.InDelta(t, want, got, 1e-9,
									"n=%d anchored=%v (i,j,k)=(%d,%d,%d) m=%d", n, anchored, i, j, k, m)
							}
						}
					}
				}
			}
		}
	}
}

func TestAssemble3Opt_Variants(t *testing.T) {
	tour := []int{0, 1, 2, 3, 4, 5}
	// P=[0], S1=[1 2], S2=[3 4], S3=[5]
	want := [][]int{
		{0, 2, 1, 3, 4, 5}, // S1R S2
		{0, 1, 2, 4, 3, 5}, // S1 S2R
		{0, 4, 3, 2, 1, 5}, // S2R S1R
		{0, 2, 1, 4, 3, 5}, // S1R S2R
		{0, 3, 4, 2, 1, 5}, // S2 S1R
		{0, 4, 3, 1, 2, 5}, // S2R S1
		{0, 3, 4, 1, 2, 5}, // S2 S1
	}
	for m := range tryX {
		assert.Equal(t, want[m], assemble3Opt(nil, tour, 1, 3, 5, tryX[m], tryY[m]), "m=%d", m)
	}
}

func TestRelocateAndReverse(t *testing.T) {
	tour := []int{0, 1, 2, 3}
	assert.Equal(t, []int{1, 2, 0, 3}, relocate(nil, tour, 0, 2))
	assert.Equal(t, []int{3, 0, 1, 2}, relocate(nil, tour, 3, 0))
	assert.Equal(t, []int{1, 2, 3, 0}, relocate(nil, tour, 0, 3))
	assert.Equal(t, []int{0, 2, 1, 3}, reverseSegment(nil, tour, 1, 2))
	assert.Equal(t, []int{3, 2, 1, 0}, reverseSegment(nil, tour, 0, 3))
}
