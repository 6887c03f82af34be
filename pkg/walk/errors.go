package walk

import "errors"

// Sentinel errors for invalid walk configuration
var (
	ErrInvalidStepCount = errors.New("step count must be non-negative")
	ErrInvalidStepSize  = errors.New("maximum step size must be at least 1")
	ErrInvalidWalkCount = errors.New("walk count must be non-negative")
)
