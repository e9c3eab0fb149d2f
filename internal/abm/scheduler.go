package abm

import "math/rand"

// Scheduler activates every agent exactly once per step, in an order
// reshuffled each step from the model's random source.
type Scheduler struct {
	agents []Agent
	rng    *rand.Rand
}

func NewScheduler(rng *rand.Rand) *Scheduler {
	return &Scheduler{agents: make([]Agent, 0), rng: rng}
}

func (s *Scheduler) Add(a Agent) { s.agents = append(s.agents, a) }

func (s *Scheduler) Remove(id int) {
	for i, a := range s.agents {
		if a.ID() == id {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			return
		}
	}
}

func (s *Scheduler) Agents() []Agent {
	out := make([]Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

func (s *Scheduler) Len() int { return len(s.agents) }

// Step activates all agents in a fresh random order. The shuffle draws
// from the same seeded source the agents use, keeping runs replayable.
func (s *Scheduler) Step() {
	order := make([]Agent, len(s.agents))
	copy(order, s.agents)
	s.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	for _, a := range order {
		a.Step(s.rng)
	}
}
