// Package tsp — cost utilities.
//
// TourCost sums a closed tour against any gonum matrix with strict checks;
// Problem.Cost uses the pre-validated flat buffer instead.
package tsp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// TourCost returns the total length of the closed tour over dist.
//
// Contract:
//   - tour is closed: len(tour) ≥ 2 and indices within [0..n-1].
//   - dist is square.
//
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrIncompleteGraph, ErrNegativeWeight.
//
// Complexity: O(n).
func TourCost(dist mat.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	n, nc := dist.Dims()
	if n != nc {
		return 0, ErrNonSquare
	}

	var (
		sum  float64
		w    float64
		i    int
		u, v int
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w = dist.At(u, v)
		switch {
		case math.IsNaN(w):
			return 0, ErrDimensionMismatch
		case math.IsInf(w, 0):
			return 0, ErrIncompleteGraph
		case w < 0:
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return sum, nil
}

// Euclidean builds the symmetric distance matrix of 2-D points.
//
// Complexity: O(n²).
func Euclidean(points [][2]float64) *mat.SymDense {
	n := len(points)
	if n == 0 {
		return &mat.SymDense{}
	}
	d := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.SetSym(i, j, math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1]))
		}
	}

	return d
}
