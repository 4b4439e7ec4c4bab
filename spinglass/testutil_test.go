package spinglass_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/anneal/spinglass"
)

// randomCouplings builds a symmetric ±1 coupling matrix with zero diagonal.
func randomCouplings(n int, seed int64) *mat.SymDense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			w := 1.0
			if rng.Intn(2) == 0 {
				w = -1
			}
			data[a*n+b], data[b*n+a] = w, w
		}
	}

	return mat.NewSymDense(n, data)
}

// bruteForceMin enumerates all 2ⁿ configurations.
func bruteForceMin(t *testing.T, m *spinglass.Model) float64 {
	t.Helper()
	n := m.N()
	require.LessOrEqual(t, n, 16, "brute force is exponential")

	best := math.Inf(1)
	spins := make([]float64, n)
	for mask := 0; mask < 1<<n; mask++ {
		for i := range spins {
			spins[i] = -1
			if mask&(1<<i) != 0 {
				spins[i] = 1
			}
		}
		s, err := m.NewState(spins)
		require.NoError(t, err)
		best = math.Min(best, m.Cost(s))
	}

	return best
}

// mustModel wraps NewModel for constant test inputs.
func mustModel(t *testing.T, j mat.Symmetric) *spinglass.Model {
	t.Helper()
	m, err := spinglass.NewModel(j)
	require.NoError(t, err)
	return m
}
