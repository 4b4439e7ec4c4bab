package spinglass

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/anneal/sa"
)

// State is a spin configuration together with its local fields.
// Field[i] = Σ_j J_ij·Spins[j] is maintained by Model.Accept.
type State struct {
	Spins []float64
	Field []float64
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	return &State{
		Spins: append([]float64(nil), s.Spins...),
		Field: append([]float64(nil), s.Field...),
	}
}

// Model is a spin glass with fixed couplings. It is read-only after
// construction and safe for concurrent use on distinct states.
type Model struct {
	j    *mat.SymDense
	n    int
	rows []float64 // row-major copy of J for the O(n) field update
	diag []float64
}

var _ sa.Problem[*State, int] = (*Model)(nil)

// NewModel copies the couplings j into a new model.
//
// Errors: ErrNilCouplings, ErrEmptyModel, ErrNaNInf.
//
// Complexity: O(n²).
func NewModel(j mat.Symmetric) (*Model, error) {
	if j == nil {
		return nil, ErrNilCouplings
	}
	n := j.SymmetricDim()
	if n == 0 {
		return nil, ErrEmptyModel
	}

	m := &Model{
		j:    mat.NewSymDense(n, nil),
		n:    n,
		rows: make([]float64, n*n),
		diag: make([]float64, n),
	}
	m.j.CopySym(j)

	var (
		a, b int
		v    float64
	)
	for a = 0; a < n; a++ {
		for b = 0; b < n; b++ {
			v = m.j.At(a, b)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			m.rows[a*n+b] = v
		}
		m.diag[a] = m.rows[a*n+a]
	}

	return m, nil
}

// N returns the number of spins.
func (m *Model) N() int { return m.n }

// Couplings returns a copy of J.
func (m *Model) Couplings() *mat.SymDense {
	c := mat.NewSymDense(m.n, nil)
	c.CopySym(m.j)
	return c
}

// NewState builds a state from explicit spins, computing its fields.
// spins is copied.
//
// Errors: ErrDimensionMismatch, ErrBadSpin.
func (m *Model) NewState(spins []float64) (*State, error) {
	if len(spins) != m.n {
		return nil, ErrDimensionMismatch
	}
	for _, v := range spins {
		if v != 1 && v != -1 {
			return nil, ErrBadSpin
		}
	}

	return m.stateOf(append([]float64(nil), spins...)), nil
}

// stateOf wraps spins (taking ownership) and computes Field = J·spins.
func (m *Model) stateOf(spins []float64) *State {
	var h mat.VecDense
	h.MulVec(m.j, mat.NewVecDense(m.n, spins))

	return &State{Spins: spins, Field: h.RawVector().Data}
}

// Cost returns E(s) = sᵀ·J·s.
//
// Complexity: O(n²).
func (m *Model) Cost(s *State) float64 {
	x := mat.NewVecDense(m.n, s.Spins)
	return mat.Inner(x, m.j, x)
}

// Propose picks a spin uniformly at random and proposes flipping it.
func (m *Model) Propose(s *State, rng *rand.Rand) sa.Proposal[int] {
	return m.ProposeFlip(s, rng.Intn(m.n))
}

// ProposeFlip proposes flipping spin i.
// Δ = −4·s_i·h_i + 4·J_ii (the diagonal term does not change on a flip).
//
// Complexity: O(1).
func (m *Model) ProposeFlip(s *State, i int) sa.Proposal[int] {
	return sa.Proposal[int]{
		Move:  i,
		Delta: -4*s.Field[i]*s.Spins[i] + 4*m.diag[i],
	}
}

// Accept flips spin p.Move in place and updates the fields:
// h += 2·s_i(new)·J[:, i].
//
// Complexity: O(n).
func (m *Model) Accept(p sa.Proposal[int], s *State) *State {
	i := p.Move
	s.Spins[i] = -s.Spins[i]

	c := 2 * s.Spins[i]
	row := m.rows[i*m.n : (i+1)*m.n]
	for k := range s.Field {
		s.Field[k] += c * row[k]
	}

	return s
}

// RandomState draws every spin independently and uniformly from {−1,+1}.
func (m *Model) RandomState(rng *rand.Rand) *State {
	spins := make([]float64, m.n)
	for i := range spins {
		if rng.Float64() < 0.5 {
			spins[i] = -1
		} else {
			spins[i] = 1
		}
	}

	return m.stateOf(spins)
}
