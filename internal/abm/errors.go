package abm

import "errors"

// Domain errors for simulation runs.
var (
	// ErrNilModel indicates a simulator constructed without a model.
	ErrNilModel = errors.New("abm: nil model")

	// ErrInvalidSteps indicates a run configured with a non-positive
	// step count.
	ErrInvalidSteps = errors.New("abm: step count must be positive")

	// ErrEmptyPopulation indicates a model with no agents to activate.
	ErrEmptyPopulation = errors.New("abm: model has no agents")
)
