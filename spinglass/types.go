package spinglass

import "errors"

// Sentinel errors returned by model construction and coupling loading.
var (
	// ErrNilCouplings indicates that NewModel received a nil matrix.
	ErrNilCouplings = errors.New("spinglass: couplings are nil")

	// ErrEmptyModel indicates a model with no spins.
	ErrEmptyModel = errors.New("spinglass: model has no spins")

	// ErrNaNInf indicates a NaN or ±Inf coupling.
	ErrNaNInf = errors.New("spinglass: NaN or Inf coupling")

	// ErrDimensionMismatch indicates a state whose length differs from the model size.
	ErrDimensionMismatch = errors.New("spinglass: dimension mismatch")

	// ErrBadSpin indicates a spin value other than −1 or +1.
	ErrBadSpin = errors.New("spinglass: spin must be -1 or +1")

	// ErrBadLine indicates a coupling line that is not an "i j w" triple.
	ErrBadLine = errors.New("spinglass: malformed coupling line")

	// ErrIndexOutOfRange indicates a coupling index outside [0, n).
	ErrIndexOutOfRange = errors.New("spinglass: spin index out of range")
)
