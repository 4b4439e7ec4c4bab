// Package sa provides a generic Simulated Annealing engine.
//
// A problem is described by the Problem interface (or by bundling four
// functions into Funcs). The engine never looks inside a state: it asks the
// problem for a random initial state, for proposals (opaque move + cost delta),
// and to apply accepted moves. States must be deep-clonable so that the best
// configuration seen can be snapshotted independently of the live search.
//
// Entry points:
//
//   - AnnealOnce — one Metropolis trajectory over a temperature schedule
//     from a given initial state.
//
//   - Anneal — Options.Runs independent trajectories on a single random
//     stream; returns the global optimum.
//
//   - AnnealParallel — same contract as Anneal, runs spread over
//     Options.Workers goroutines with one derived stream per run.
//
// Acceptance rule (Metropolis):
//
//	accept ⇔ exp(−Δ/T) > u,  u ~ U[0,1)
//
// so every move with Δ ≤ 0 is accepted, and worsening moves are accepted
// with probability exp(−Δ/T).
//
// Complexity:
//   - Time:  O(Runs · len(Schedule) · Sweeps · (propose + accept)) plus one
//     Clone per improvement of the running optimum.
//   - Space: O(Sweeps) for the per-stage uniform buffer plus two states.
//
// Determinism: with a fixed Options.Seed (or a caller-seeded Options.RNG)
// every driver reproduces identical results, including AnnealParallel for any
// worker count.
package sa
