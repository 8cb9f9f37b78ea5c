package builder

import "errors"

// Sentinel errors for builder generators and loaders.
var (
	// ErrTooFewNodes indicates the node count is below the minimum the
	// requested topology needs (Path ≥ 2, Cycle ≥ 3, Star ≥ 2, Complete ≥ 1).
	ErrTooFewNodes = errors.New("builder: too few nodes for topology")

	// ErrInvalidDimensions indicates non-positive grid dimensions.
	ErrInvalidDimensions = errors.New("builder: grid dimensions must be positive")
)
