package sa

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Schedule is an ordered list of temperatures, consumed first to last.
// Each entry is one annealing stage of Options.Sweeps moves.
//
// The drivers do not validate temperatures; T ≤ 0 makes the acceptance
// probability meaningless. Call Validate on schedules built from user input.
type Schedule []float64

// Linear returns stages temperatures evenly spaced from start to end inclusive.
// stages==1 yields [start]; stages==0 yields an empty schedule.
//
// Complexity: O(stages).
func Linear(start, end float64, stages int) (Schedule, error) {
	switch {
	case stages < 0:
		return nil, ErrNegativeStages
	case stages == 0:
		return Schedule{}, nil
	case stages == 1:
		return Schedule{start}, nil
	}

	return Schedule(floats.Span(make([]float64, stages), start, end)), nil
}

// Geometric returns stages temperatures spaced evenly on a log scale from
// start to end inclusive. Both bounds must be positive.
//
// Complexity: O(stages).
func Geometric(start, end float64, stages int) (Schedule, error) {
	if stages < 0 {
		return nil, ErrNegativeStages
	}
	if !(start > 0) || !(end > 0) {
		return nil, ErrNonPositiveTemperature
	}
	switch stages {
	case 0:
		return Schedule{}, nil
	case 1:
		return Schedule{start}, nil
	}

	return Schedule(floats.LogSpan(make([]float64, stages), start, end)), nil
}

// Validate reports ErrNonPositiveTemperature if any temperature is ≤ 0, NaN
// or +Inf. An empty schedule is valid: it leaves the initial state unchanged.
func (s Schedule) Validate() error {
	for _, t := range s {
		if !(t > 0) || math.IsInf(t, 1) {
			return ErrNonPositiveTemperature
		}
	}

	return nil
}
