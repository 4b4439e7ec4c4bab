package tsp

import "errors"

// Start is the fixed first (and closing) vertex of every tour.
const Start = 0

// Sentinel errors for distance matrices and tours.
var (
	// ErrDimensionMismatch indicates a nil matrix, an invalid tour/permutation
	// shape, or a NaN weight.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare indicates a distance matrix that is not n×n.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrTooSmall indicates fewer than 3 vertices; no 2-opt move exists.
	ErrTooSmall = errors.New("tsp: need at least 3 vertices")

	// ErrNonZeroDiagonal indicates a distance d(i,i) ≠ 0.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal not zero")

	// ErrNegativeWeight indicates a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrIncompleteGraph indicates an infinite distance (missing edge).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrAsymmetry indicates d(i,j) ≠ d(j,i).
	ErrAsymmetry = errors.New("tsp: matrix is not symmetric")
)

// Tour is a closed Hamiltonian cycle: Order[0] == Order[n] == Start.
type Tour struct {
	Order []int
}

// Clone returns a deep copy of t.
func (t *Tour) Clone() *Tour { return &Tour{Order: CopyTour(t.Order)} }

// Move is a 2-opt reversal of the inclusive segment Order[I..K].
type Move struct {
	I, K int
}
