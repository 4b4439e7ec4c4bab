package sa_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/anneal/sa"
)

// bits is a bit-string state; the cost counts set bits.
type bits []bool

func (b bits) Clone() bits { return append(bits(nil), b...) }

// ExampleAnneal minimizes the number of set bits in a 16-bit word with
// single-bit flips, bundling the four problem functions with NewFuncs.
func ExampleAnneal() {
	ones := func(b bits) float64 {
		var n float64
		for _, v := range b {
			if v {
				n++
			}
		}
		return n
	}

	problem, err := sa.NewFuncs(
		ones,
		func(b bits, rng *rand.Rand) sa.Proposal[int] {
			i := rng.Intn(len(b))
			d := 1.0
			if b[i] {
				d = -1
			}
			return sa.Proposal[int]{Move: i, Delta: d}
		},
		func(p sa.Proposal[int], b bits) bits { b[p.Move] = !b[p.Move]; return b },
		func(rng *rand.Rand) bits {
			b := make(bits, 16)
			for i := range b {
				b[i] = rng.Intn(2) == 1
			}
			return b
		},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	schedule, _ := sa.Linear(2, 0.05, 20)
	g, err := sa.Anneal[bits, int](problem, schedule, sa.NewOptions(
		sa.WithRuns(3),
		sa.WithSweeps(200),
		sa.WithSeed(7),
	))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("best cost: %.0f (runs: %d)\n", g.Best.Cost, len(g.Runs))
	fmt.Println("consistent:", ones(g.Best.State) == g.Best.Cost)
	// Output:
	// best cost: 0 (runs: 3)
	// consistent: true
}

// ExampleAnnealOnce shows that an empty schedule returns the starting point.
func ExampleAnnealOnce() {
	problem, _ := sa.NewFuncs(
		func(b bits) float64 { return float64(len(b)) },
		func(bits, *rand.Rand) sa.Proposal[int] { return sa.Proposal[int]{} },
		func(_ sa.Proposal[int], b bits) bits { return b },
		func(*rand.Rand) bits { return bits{} },
	)

	res, _ := sa.AnnealOnce[bits, int](problem, bits{true, false, true}, sa.Schedule{}, sa.DefaultOptions())
	fmt.Println(res.Cost, len(res.State))
	// Output:
	// 3 3
}
