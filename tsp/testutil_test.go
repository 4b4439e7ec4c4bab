// Package tsp_test provides lightweight helpers shared across *_test.go files.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anneal/tsp"
)

// randomPoints returns n points in the unit square.
func randomPoints(n int, seed int64) [][2]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64(), rng.Float64()}
	}
	return pts
}

// circlePoints returns n points evenly spaced on the unit circle, in order.
func circlePoints(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}
	return pts
}

func mustProblem(t *testing.T, pts [][2]float64) *tsp.Problem {
	t.Helper()
	p, err := tsp.NewProblem(tsp.Euclidean(pts))
	require.NoError(t, err)
	return p
}

// bruteForceMin enumerates all tours starting at tsp.Start.
func bruteForceMin(t *testing.T, p *tsp.Problem) float64 {
	t.Helper()
	n := p.N()
	require.LessOrEqual(t, n, 9, "brute force is factorial")

	rest := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		rest = append(rest, v)
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			order := append(append([]int{tsp.Start}, rest...), tsp.Start)
			tour, err := p.NewTour(order)
			require.NoError(t, err)
			best = math.Min(best, p.Cost(tour))
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}
