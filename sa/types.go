package sa

import (
	"errors"
	"time"
)

// Sentinel errors returned by the annealing drivers and schedule builders.
var (
	// ErrNilProblem indicates that a nil Problem was passed to a driver.
	ErrNilProblem = errors.New("sa: problem is nil")

	// ErrNoRuns indicates that Options.Runs < 1; a multi-run driver needs
	// at least one run to produce a result.
	ErrNoRuns = errors.New("sa: number of runs must be >= 1")

	// ErrNegativeSweeps indicates that Options.Sweeps < 0.
	ErrNegativeSweeps = errors.New("sa: sweeps per stage must be non-negative")

	// ErrNegativeWorkers indicates that Options.Workers < 0.
	ErrNegativeWorkers = errors.New("sa: workers must be non-negative")

	// ErrNegativeStages indicates that a schedule builder was asked for < 0 stages.
	ErrNegativeStages = errors.New("sa: number of stages must be non-negative")

	// ErrNonPositiveTemperature indicates a temperature <= 0 or NaN.
	ErrNonPositiveTemperature = errors.New("sa: temperatures must be positive")

	// ErrNilFunc indicates that NewFuncs received a nil function.
	ErrNilFunc = errors.New("sa: problem function is nil")
)

// Proposal is a candidate move together with the exact cost change it causes.
// Move is opaque to the engine and handed back verbatim to Problem.Accept.
type Proposal[M any] struct {
	Move  M
	Delta float64
}

// Result is the best (cost, state) pair observed during a run.
// State is a deep copy, detached from the live search state.
type Result[S any] struct {
	Cost  float64
	State S

	// Proposed and Accepted count the moves of the trajectory that produced
	// this result.
	Proposed int
	Accepted int
}

// RunReport is the progress record emitted after each run of a multi-run driver.
type RunReport struct {
	Run      int           // zero-based run index
	Cost     float64       // best cost found by this run
	Elapsed  time.Duration // wall-clock time of this run
	Proposed int
	Accepted int
}

// StageReport is emitted after each temperature stage when Options.OnStage is set.
type StageReport struct {
	Run         int // -1 for a standalone AnnealOnce call
	Stage       int
	Temperature float64
	Proposed    int // moves proposed in this stage
	Accepted    int // moves accepted in this stage
	Cost        float64
	BestCost    float64
}

// Global is the outcome of a multi-run driver.
type Global[S any] struct {
	// Best is the lowest-cost Result over all runs.
	Best Result[S]

	// BestRun is the index of the run that produced Best.
	BestRun int

	// Runs holds one report per run, ordered by run index.
	Runs []RunReport
}
