package irt

import "errors"

var (
	// ErrInvalidDimensions reports a parameter-shape mismatch: the
	// discrimination count differs from the boundary-table row count,
	// or the boundary table is ragged or empty.
	ErrInvalidDimensions = errors.New("irt: invalid parameter dimensions")

	// ErrInvalidParameter reports a parameter value outside its domain,
	// e.g. a non-finite discrimination or a guessing value outside [0, 1).
	ErrInvalidParameter = errors.New("irt: invalid parameter value")

	// ErrUnknownModel reports an unrecognized model kind string.
	ErrUnknownModel = errors.New("irt: unknown model kind")
)
