package wealth

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/san-kum/agentviz/internal/abm"
	"github.com/san-kum/agentviz/internal/space"
)

// ErrBadPopulation indicates a model configured with a non-positive
// agent count.
var ErrBadPopulation = errors.New("wealth: agent count must be positive")

const StartingWealth = 1

// Model holds the agent population, the grid, and the seeded random
// source every stochastic decision draws from.
type Model struct {
	grid  *space.Grid
	sched *abm.Scheduler
	byID  map[int]*Agent
	rng   *rand.Rand
	steps int
}

// NewModel scatters n agents with unit wealth across a width x height
// torus grid.
func NewModel(n, width, height int, seed int64) (*Model, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadPopulation, n)
	}
	grid, err := space.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	m := &Model{
		grid:  grid,
		sched: abm.NewScheduler(rng),
		byID:  make(map[int]*Agent, n),
		rng:   rng,
	}

	for i := 0; i < n; i++ {
		a := &Agent{id: i, wealth: StartingWealth, model: m}
		pos := space.Position{X: rng.Intn(width), Y: rng.Intn(height)}
		if err := grid.Place(a, pos); err != nil {
			return nil, err
		}
		m.byID[i] = a
		m.sched.Add(a)
	}

	return m, nil
}

// Step advances the model one tick: every agent activates once, in
// random order.
func (m *Model) Step() {
	m.sched.Step()
	m.steps++
}

func (m *Model) Agents() []abm.Agent { return m.sched.Agents() }

func (m *Model) Grid() *space.Grid { return m.grid }

func (m *Model) Steps() int { return m.steps }

// AgentAt returns the typed agent by id.
func (m *Model) AgentAt(id int) (*Agent, bool) {
	a, ok := m.byID[id]
	return a, ok
}

// Wealths returns the current per-agent wealth, indexed by agent id.
func (m *Model) Wealths() []float64 {
	out := make([]float64, len(m.byID))
	for id, a := range m.byID {
		out[id] = float64(a.wealth)
	}
	return out
}

// TotalWealth returns the sum over all agents. The exchange rule
// conserves it, so any drift indicates a model bug.
func (m *Model) TotalWealth() int {
	total := 0
	for _, a := range m.byID {
		total += a.wealth
	}
	return total
}
