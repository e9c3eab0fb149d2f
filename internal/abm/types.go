package abm

import "math/rand"

// Agent is one simulated entity. Step advances the agent by one tick
// using the model's seeded random source, so runs replay exactly for a
// given seed.
type Agent interface {
	ID() int
	Step(rng *rand.Rand)
}

// Model is a population of agents advanced in discrete steps.
type Model interface {
	Step()
	Agents() []Agent
}

// Collector computes one aggregate measure over the model, observed
// once per step. Series returns the full per-step history.
type Collector interface {
	Name() string
	Observe(m Model)
	Value() float64
	Series() []float64
	Reset()
}

// Observer receives a callback after every completed step.
type Observer interface {
	OnStep(m Model, step int)
}

// Config holds run parameters.
type Config struct {
	Steps int
	Seed  int64
}

// Result holds the outcome of one run: the collector series keyed by
// collector name, plus each collector's final value.
type Result struct {
	Steps  int
	Series map[string][]float64
	Final  map[string]float64
}
