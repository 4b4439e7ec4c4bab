package sa

import "math/rand"

// Default option values. They match the classic settings used for the
// 300-spin reference instance: 30 restarts, 4000 Metropolis moves per stage.
const (
	DefaultRuns   = 30
	DefaultSweeps = 4000
)

// Options configures the annealing drivers.
//
// Runs    – number of independent runs (multi-run drivers only). Must be ≥ 1.
// Sweeps  – Metropolis moves per temperature stage. Must be ≥ 0.
// Seed    – seed for the internal stream when RNG is nil (0 ⇒ defaultRNGSeed).
// RNG     – caller-owned shared stream; overrides Seed when non-nil.
// Workers – goroutine cap for AnnealParallel (0 ⇒ one worker per run).
// OnRun   – optional per-run progress hook.
// OnStage – optional per-stage progress hook.
type Options struct {
	Runs    int
	Sweeps  int
	Seed    int64
	RNG     *rand.Rand
	Workers int

	OnRun   func(RunReport)
	OnStage func(StageReport)
}

// Option represents a functional option for configuring the drivers.
type Option func(*Options)

// WithRuns sets the number of independent runs.
func WithRuns(n int) Option {
	return func(o *Options) { o.Runs = n }
}

// WithSweeps sets the number of moves proposed at every temperature.
func WithSweeps(n int) Option {
	return func(o *Options) { o.Sweeps = n }
}

// WithSeed selects a deterministic internal stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRNG makes the drivers draw from a caller-owned stream.
// The stream must not be used concurrently by anyone else during the call.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) { o.RNG = rng }
}

// WithWorkers caps the number of goroutines used by AnnealParallel.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithRunHook installs a per-run progress callback.
func WithRunHook(fn func(RunReport)) Option {
	return func(o *Options) { o.OnRun = fn }
}

// WithStageHook installs a per-stage progress callback.
func WithStageHook(fn func(StageReport)) Option {
	return func(o *Options) { o.OnStage = fn }
}

// DefaultOptions returns Options initialized with sensible defaults.
//
// Defaults:
//   - Runs:    DefaultRuns (30)
//   - Sweeps:  DefaultSweeps (4000)
//   - Seed:    0 (⇒ defaultRNGSeed)
//   - Workers: 0 (⇒ one goroutine per run in AnnealParallel)
func DefaultOptions() Options {
	return Options{
		Runs:   DefaultRuns,
		Sweeps: DefaultSweeps,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// validateOptions checks the fields shared by all drivers.
// Runs is checked separately because AnnealOnce ignores it.
func validateOptions(o Options) error {
	if o.Sweeps < 0 {
		return ErrNegativeSweeps
	}
	if o.Workers < 0 {
		return ErrNegativeWorkers
	}

	return nil
}

// stream returns the random stream the drivers draw from.
func (o Options) stream() *rand.Rand {
	if o.RNG != nil {
		return o.RNG
	}

	return rngFromSeed(o.Seed)
}
