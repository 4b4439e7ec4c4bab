package sa_test

import (
	"math/rand"

	"github.com/katalvlaran/anneal/sa"
)

// point is a 1-D integer state mutated in place by its problem.
type point struct{ x int }

func (p *point) Clone() *point { return &point{x: p.x} }

// parabola minimizes (x − target)² with ±1 steps. Accept mutates in place,
// which is what the snapshot-isolation tests rely on.
type parabola struct{ target int }

var _ sa.Problem[*point, int] = parabola{}

func (q parabola) Cost(s *point) float64 {
	d := float64(s.x - q.target)
	return d * d
}

func (q parabola) Propose(s *point, rng *rand.Rand) sa.Proposal[int] {
	step := 1
	if rng.Intn(2) == 0 {
		step = -1
	}
	next := &point{x: s.x + step}

	return sa.Proposal[int]{Move: step, Delta: q.Cost(next) - q.Cost(s)}
}

func (q parabola) Accept(p sa.Proposal[int], s *point) *point {
	s.x += p.Move
	return s
}

func (q parabola) RandomState(rng *rand.Rand) *point {
	return &point{x: rng.Intn(201) - 100}
}

// counter counts accepted moves; its proposals always carry the same delta.
type counter struct{ n int }

func (c *counter) Clone() *counter { return &counter{n: c.n} }

// constantDelta returns a Funcs problem whose every proposal has delta d and
// whose cost is n·d, so deltas stay consistent with Cost.
func constantDelta(d float64) sa.Funcs[*counter, struct{}] {
	f, err := sa.NewFuncs(
		func(c *counter) float64 { return float64(c.n) * d },
		func(*counter, *rand.Rand) sa.Proposal[struct{}] { return sa.Proposal[struct{}]{Delta: d} },
		func(_ sa.Proposal[struct{}], c *counter) *counter { c.n++; return c },
		func(*rand.Rand) *counter { return &counter{} },
	)
	if err != nil {
		panic(err)
	}

	return f
}

// mustLinear builds a linear schedule or panics (test inputs are constant).
func mustLinear(start, end float64, stages int) sa.Schedule {
	s, err := sa.Linear(start, end, stages)
	if err != nil {
		panic(err)
	}

	return s
}
