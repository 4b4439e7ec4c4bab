package sa

import (
	"math"
	"math/rand"
	"time"
)

// AnnealOnce runs one Metropolis trajectory from initial over schedule and
// returns the best cost seen together with a deep copy of the state that
// achieved it.
//
// Per stage T the driver draws Options.Sweeps uniforms up front, then for each
// move m accepts the proposal iff exp(−Δ/T) > u[m]. Accepted moves update the
// live cost incrementally (cost += Δ); the cost is never recomputed from the
// state after initialization, so a problem reporting inconsistent deltas is
// not detected.
//
// Edge cases:
//   - empty schedule ⇒ (Cost(initial), initial.Clone()).
//   - Options.Sweeps == 0 ⇒ no moves at any stage.
//
// The live state handed to the problem is initial itself; problems that
// mutate in place will mutate the caller's value.
//
// Errors: ErrNilProblem, ErrNegativeSweeps, ErrNegativeWorkers.
// Options.Runs is ignored.
func AnnealOnce[S State[S], M any](p Problem[S, M], initial S, schedule Schedule, opts Options) (Result[S], error) {
	if p == nil {
		return Result[S]{}, ErrNilProblem
	}
	if err := validateOptions(opts); err != nil {
		return Result[S]{}, err
	}

	return annealRun(p, initial, schedule, opts.Sweeps, opts.stream(), -1, opts.OnStage), nil
}

// Anneal performs Options.Runs independent annealing runs, each from a fresh
// Problem.RandomState, and returns the global optimum. All runs draw from one
// random stream, sequentially.
//
// A run replaces the incumbent only if its cost is strictly lower, so ties keep
// the earliest run. The first run always seeds the incumbent, even if its cost
// is +Inf or NaN.
//
// Errors: ErrNilProblem, ErrNoRuns, ErrNegativeSweeps, ErrNegativeWorkers.
func Anneal[S State[S], M any](p Problem[S, M], schedule Schedule, opts Options) (Global[S], error) {
	if err := validateMulti(p, opts); err != nil {
		return Global[S]{}, err
	}

	var (
		rng = opts.stream()
		g   = newGlobal[S](opts.Runs)
	)
	for r := 0; r < opts.Runs; r++ {
		t0 := time.Now()
		initial := p.RandomState(rng)
		res := annealRun(p, initial, schedule, opts.Sweeps, rng, r, opts.OnStage)
		rep := reportOf(r, res, time.Since(t0))

		g.fold(r, res, rep)
		if opts.OnRun != nil {
			opts.OnRun(rep)
		}
	}

	return g, nil
}

// annealRun is the Metropolis sweep shared by all drivers.
// run is forwarded to StageReport only.
func annealRun[S State[S], M any](
	p Problem[S, M],
	initial S,
	schedule Schedule,
	sweeps int,
	rng *rand.Rand,
	run int,
	onStage func(StageReport),
) Result[S] {
	state := initial
	cost := p.Cost(state)
	best := Result[S]{Cost: cost, State: initial.Clone()}

	// One buffer for the whole run; refilled at every stage.
	uni := make([]float64, sweeps)

	var (
		stage    int
		t        float64
		beta     float64
		m        int
		accepted int
		prop     Proposal[M]
	)
	for stage, t = range schedule {
		beta = 1 / t
		for m = range uni {
			uni[m] = rng.Float64()
		}

		accepted = 0
		for m = 0; m < sweeps; m++ {
			prop = p.Propose(state, rng)
			if math.Exp(-beta*prop.Delta) <= uni[m] {
				continue
			}
			state = p.Accept(prop, state)
			cost += prop.Delta
			accepted++
			if cost < best.Cost {
				best.Cost = cost
				best.State = state.Clone()
			}
		}
		best.Proposed += sweeps
		best.Accepted += accepted

		if onStage != nil {
			onStage(StageReport{
				Run:         run,
				Stage:       stage,
				Temperature: t,
				Proposed:    sweeps,
				Accepted:    accepted,
				Cost:        cost,
				BestCost:    best.Cost,
			})
		}
	}

	return best
}

// validateMulti checks the preconditions shared by Anneal and AnnealParallel.
func validateMulti[S State[S], M any](p Problem[S, M], opts Options) error {
	if p == nil {
		return ErrNilProblem
	}
	if opts.Runs < 1 {
		return ErrNoRuns
	}

	return validateOptions(opts)
}

func newGlobal[S any](runs int) Global[S] {
	return Global[S]{
		Best:    Result[S]{Cost: math.Inf(1)},
		BestRun: -1,
		Runs:    make([]RunReport, 0, runs),
	}
}

// fold merges one run into the accumulator. Runs must be folded in index order
// for the tie-breaking rule (earliest run wins) to hold.
func (g *Global[S]) fold(run int, res Result[S], rep RunReport) {
	if g.BestRun < 0 || res.Cost < g.Best.Cost {
		g.Best = res
		g.BestRun = run
	}
	g.Runs = append(g.Runs, rep)
}

func reportOf[S any](run int, res Result[S], elapsed time.Duration) RunReport {
	return RunReport{
		Run:      run,
		Cost:     res.Cost,
		Elapsed:  elapsed,
		Proposed: res.Proposed,
		Accepted: res.Accepted,
	}
}
