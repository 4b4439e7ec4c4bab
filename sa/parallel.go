package sa

import (
	"math/rand"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// AnnealParallel has the contract of Anneal but executes runs concurrently on
// at most Options.Workers goroutines (0 ⇒ one per run).
//
// Every run r draws from its own stream, derived from the base stream
// (Options.RNG or Options.Seed) and r before any run starts. The result
// therefore depends only on the seed, never on the worker count or on
// scheduling, and runs are folded in index order so ties keep the earliest run.
//
// Requirements on the problem: its methods are called concurrently on
// distinct states and must not share mutable data between them.
// OnRun and OnStage may be called from several goroutines at once.
//
// A panic inside a problem method is re-raised by this call, with the original
// value, once all workers have stopped. If several runs panic, the one with the
// lowest index wins.
func AnnealParallel[S State[S], M any](p Problem[S, M], schedule Schedule, opts Options) (Global[S], error) {
	if err := validateMulti(p, opts); err != nil {
		return Global[S]{}, err
	}

	base := opts.stream()
	streams := make([]*rand.Rand, opts.Runs)
	for r := range streams {
		streams[r] = deriveRNG(base, uint64(r))
	}

	workers := opts.Workers
	if workers == 0 || workers > opts.Runs {
		workers = opts.Runs
	}

	type outcome struct {
		res Result[S]
		rep RunReport
	}
	outs := make([]outcome, opts.Runs)
	panics := make([]any, opts.Runs)

	wp := pool.New().WithMaxGoroutines(workers)
	for r := 0; r < opts.Runs; r++ {
		r := r
		wp.Go(func() {
			defer func() {
				if v := recover(); v != nil {
					panics[r] = v
				}
			}()

			t0 := time.Now()
			rng := streams[r]
			res := annealRun(p, p.RandomState(rng), schedule, opts.Sweeps, rng, r, opts.OnStage)
			rep := reportOf(r, res, time.Since(t0))
			outs[r] = outcome{res: res, rep: rep}
			if opts.OnRun != nil {
				opts.OnRun(rep)
			}
		})
	}
	wp.Wait()
	for _, v := range panics {
		if v != nil {
			panic(v)
		}
	}

	g := newGlobal[S](opts.Runs)
	for r, o := range outs {
		g.fold(r, o.res, o.rep)
	}

	return g, nil
}
