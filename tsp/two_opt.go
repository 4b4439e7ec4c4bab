// Package tsp - 2-opt neighbourhood as an annealing problem.
//
// Problem proposes uniformly random 2-opt reversals on a closed tour and
// reports their exact cost change:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), a=T[I−1], b=T[I], c=T[K], d=T[K+1].
//
// Because the tour is closed at Start and 1 ≤ I < K ≤ n−1, no index wraps.
// Reversing the whole interior (I=1, K=n−1) walks the same cycle backwards and
// has Δ = 0 on a symmetric matrix.
package tsp

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/anneal/sa"
)

// Problem is a symmetric TSP instance. It is read-only after construction
// and safe for concurrent use on distinct tours.
type Problem struct {
	n int
	w []float64 // w[u*n+v] == d(u,v)
}

var _ sa.Problem[*Tour, Move] = (*Problem)(nil)

// NewProblem validates dist and copies its weights.
//
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrTooSmall, ErrIncompleteGraph,
// ErrNonZeroDiagonal, ErrNegativeWeight, ErrAsymmetry.
//
// Complexity: O(n²).
func NewProblem(dist mat.Matrix) (*Problem, error) {
	w, n, err := validateDistMatrix(dist, symTol)
	if err != nil {
		return nil, err
	}

	return &Problem{n: n, w: w}, nil
}

// N returns the number of vertices.
func (p *Problem) N() int { return p.n }

func (p *Problem) at(u, v int) float64 { return p.w[u*p.n+v] }

// NewTour validates a closed tour and wraps a copy of it.
func (p *Problem) NewTour(order []int) (*Tour, error) {
	if err := ValidateTour(order, p.n); err != nil {
		return nil, err
	}

	return &Tour{Order: CopyTour(order)}, nil
}

// Cost returns the length of the closed tour.
//
// Complexity: O(n).
func (p *Problem) Cost(t *Tour) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < p.n; i++ {
		sum += p.at(t.Order[i], t.Order[i+1])
	}

	return sum
}

// Propose draws I uniformly from [1, n−2] and K uniformly from [I+1, n−1].
func (p *Problem) Propose(t *Tour, rng *rand.Rand) sa.Proposal[Move] {
	i := 1 + rng.Intn(p.n-2)
	k := i + 1 + rng.Intn(p.n-1-i)

	return p.ProposeReversal(t, i, k)
}

// ProposeReversal returns the proposal reversing Order[i..k].
// Callers guarantee 1 ≤ i < k ≤ n−1.
//
// Complexity: O(1).
func (p *Problem) ProposeReversal(t *Tour, i, k int) sa.Proposal[Move] {
	a, b := t.Order[i-1], t.Order[i]
	c, d := t.Order[k], t.Order[k+1]

	return sa.Proposal[Move]{
		Move:  Move{I: i, K: k},
		Delta: p.at(a, c) + p.at(b, d) - p.at(a, b) - p.at(c, d),
	}
}

// Accept reverses the segment in place.
//
// Complexity: O(K−I).
func (p *Problem) Accept(prop sa.Proposal[Move], t *Tour) *Tour {
	reverseArcInPlace(t.Order, prop.Move.I, prop.Move.K)
	return t
}

// RandomState returns a uniformly random closed tour starting at Start.
//
// Complexity: O(n).
func (p *Problem) RandomState(rng *rand.Rand) *Tour {
	perm := make([]int, p.n)
	for i := range perm {
		perm[i] = i
	}
	shuffleIntsInPlace(perm, rng)

	// perm is a permutation by construction; the error is unreachable.
	tour, _ := MakeTourFromPermutation(perm, p.n)

	return &Tour{Order: tour}
}
