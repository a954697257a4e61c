package keydetect

import "errors"

var (
	// ErrInvalidDistribution indicates a pitch-class distribution that is
	// not 12 non-negative values.
	ErrInvalidDistribution = errors.New("keydetect: distribution must be 12 non-negative values")

	// ErrDegenerateDistribution indicates a zero-variance distribution
	// (all-zero or constant), for which the correlation coefficient is
	// undefined.
	ErrDegenerateDistribution = errors.New("keydetect: zero-variance distribution, key undetermined")

	// ErrUnknownProfile indicates a weight-profile name with no registered
	// table.
	ErrUnknownProfile = errors.New("keydetect: unknown weight profile")

	// ErrInvalidWindow indicates a non-positive window size.
	ErrInvalidWindow = errors.New("keydetect: window size must be positive")
)
