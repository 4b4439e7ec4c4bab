package sa

import "math/rand"

// State is the capability the engine needs from a problem state: an explicit
// deep copy. Clone must return a value sharing no mutable memory with the
// receiver, because Accept is allowed to mutate states in place.
type State[S any] interface {
	Clone() S
}

// Problem describes a minimization problem over states S with moves M.
//
// Contracts:
//   - Cost is a pure function of state.
//   - Propose must not mutate state. Proposal.Delta must equal
//     Cost(after applying Move) − Cost(state); the engine never checks this.
//   - Accept applies p.Move to state and returns the resulting state. It may
//     mutate state in place; the returned value is authoritative.
//   - RandomState returns a fresh state sharing nothing with earlier states.
//
// All randomness must come from the rng argument so that runs are
// reproducible and safe to execute on separate goroutines.
type Problem[S State[S], M any] interface {
	Cost(state S) float64
	Propose(state S, rng *rand.Rand) Proposal[M]
	Accept(p Proposal[M], state S) S
	RandomState(rng *rand.Rand) S
}

// Funcs bundles four independent functions into a Problem.
type Funcs[S State[S], M any] struct {
	CostFunc        func(state S) float64
	ProposeFunc     func(state S, rng *rand.Rand) Proposal[M]
	AcceptFunc      func(p Proposal[M], state S) S
	RandomStateFunc func(rng *rand.Rand) S
}

var _ Problem[cloneInt, struct{}] = Funcs[cloneInt, struct{}]{}

// NewFuncs returns a Funcs problem, or ErrNilFunc if any function is nil.
func NewFuncs[S State[S], M any](
	cost func(S) float64,
	propose func(S, *rand.Rand) Proposal[M],
	accept func(Proposal[M], S) S,
	random func(*rand.Rand) S,
) (Funcs[S, M], error) {
	if cost == nil || propose == nil || accept == nil || random == nil {
		return Funcs[S, M]{}, ErrNilFunc
	}

	return Funcs[S, M]{
		CostFunc:        cost,
		ProposeFunc:     propose,
		AcceptFunc:      accept,
		RandomStateFunc: random,
	}, nil
}

// Cost calls f.CostFunc.
func (f Funcs[S, M]) Cost(state S) float64 { return f.CostFunc(state) }

// Propose calls f.ProposeFunc.
func (f Funcs[S, M]) Propose(state S, rng *rand.Rand) Proposal[M] { return f.ProposeFunc(state, rng) }

// Accept calls f.AcceptFunc.
func (f Funcs[S, M]) Accept(p Proposal[M], state S) S { return f.AcceptFunc(p, state) }

// RandomState calls f.RandomStateFunc.
func (f Funcs[S, M]) RandomState(rng *rand.Rand) S { return f.RandomStateFunc(rng) }

// cloneInt only anchors the compile-time interface check above.
type cloneInt int

func (c cloneInt) Clone() cloneInt { return c }
