// Package anneal is a generic Simulated Annealing toolkit.
//
// Everything is organized under a few subpackages:
//
//	sa/         — the engine: Problem contract, Funcs adapter, schedules,
//	              AnnealOnce / Anneal / AnnealParallel
//	spinglass/  — Ising spin-glass problem with gonum-backed couplings
//	tsp/        — symmetric TSP with 2-opt moves
//	cmd/anneal  — CLI annealing a spin glass from a coupling file
//
// Quick start:
//
//	schedule, _ := sa.Linear(10, 0.6, 51)
//	g, err := sa.Anneal[*spinglass.State, int](model, schedule, sa.DefaultOptions())
//
// Runs are reproducible: the same Options.Seed yields the same optimum, with
// or without parallel workers.
package anneal
