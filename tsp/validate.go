// Package tsp - distance matrix validation.
//
// Deterministic, side-effect free; no logging, no panics on user input -
// only sentinel errors from types.go. O(n²) where n is the matrix order.
package tsp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

// validateDistMatrix checks dist and returns its weights in row-major order:
//   - non-nil, square, n ≥ 3,
//   - no NaN (ErrDimensionMismatch), no ±Inf (ErrIncompleteGraph),
//   - |d_ii| ≤ tol (ErrNonZeroDiagonal),
//   - no negative off-diagonal distances (ErrNegativeWeight),
//   - |d_ij − d_ji| ≤ tol (ErrAsymmetry).
//
// Complexity: O(n²) time, O(n²) space for the returned buffer.
func validateDistMatrix(dist mat.Matrix, tol float64) ([]float64, int, error) {
	if dist == nil {
		return nil, 0, ErrDimensionMismatch
	}
	nr, nc := dist.Dims()
	if nr != nc || nr <= 0 {
		return nil, 0, ErrNonSquare
	}
	if nr < 3 {
		return nil, 0, ErrTooSmall
	}
	n := nr

	w := make([]float64, n*n)

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = dist.At(i, j)
			switch {
			case math.IsNaN(x):
				return nil, 0, ErrDimensionMismatch
			case math.IsInf(x, 0):
				return nil, 0, ErrIncompleteGraph
			case i == j && math.Abs(x) > tol:
				return nil, 0, ErrNonZeroDiagonal
			case x < 0 && i != j:
				return nil, 0, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(w[i*n+j]-w[j*n+i]) > tol {
				return nil, 0, ErrAsymmetry
			}
		}
	}

	return w, n, nil
}
