// Package abm provides the core primitives for agent-based simulations.
//
// The package defines the fundamental interfaces and types for stepped
// multi-agent models:
//
//   - [Agent]: one simulated entity activated once per step
//   - [Model]: a population of agents advanced by Step
//   - [Scheduler]: random-order agent activation
//   - [Collector]: per-step aggregate measures over the model
//   - [Simulator]: orchestrates runs and gathers collector series
//
// # Example
//
//	m, _ := wealth.NewModel(cfg)
//	s := abm.New(m)
//	s.AddCollector(wealth.NewGini(m))
//	result, _ := s.Run(ctx, abm.Config{Steps: 100})
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe; run each model on one
// goroutine. Collectors observe the model between steps and must not
// retain references into mutable model state.
package abm
