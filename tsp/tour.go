// Package tsp — tour utilities.
//
// Helpers operate purely on tour structure (index sequences):
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - MakeTourFromPermutation: build a closed tour from a permutation, rotated to Start.
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - reverseArcInPlace: in-place segment reversal (2-opt core).
//   - CopyTour: independent copy of a tour slice.
//
// No panics on user input; only sentinel errors from types.go.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation rotates perm so that Start comes first and closes
// the cycle: the result has length n+1 with tour[0] == tour[n] == Start.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}

	var i, pivot int
	for i = 0; i < n; i++ {
		if perm[i] == Start {
			pivot = i
			break
		}
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = Start

	return tour, nil
}

// ValidateTour enforces the Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == Start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != Start || tour[n] != Start {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place,
// keeping the closing vertex intact. Callers guarantee 1 ≤ i < k ≤ n−1.
//
// Complexity: O(k−i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
