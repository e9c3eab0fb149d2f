package wealth

import (
	"math/rand"

	"github.com/san-kum/agentviz/internal/portray"
)

// Agent is one money-exchanging entity. It implements abm.Agent and
// portray.Entity.
type Agent struct {
	id     int
	wealth int
	model  *Model
}

func (a *Agent) ID() int     { return a.id }
func (a *Agent) Wealth() int { return a.wealth }

// Attr exposes the agent's inspectable attributes to display resolvers.
func (a *Agent) Attr(name string) (float64, bool) {
	if name == portray.WealthAttr {
		return float64(a.wealth), true
	}
	return 0, false
}

// Step moves the agent to a random neighboring cell, then hands one
// unit of wealth to a random cellmate if it has any to give.
func (a *Agent) Step(rng *rand.Rand) {
	a.move(rng)
	if a.wealth > 0 {
		a.give(rng)
	}
}

func (a *Agent) move(rng *rand.Rand) {
	pos, ok := a.model.grid.PositionOf(a.id)
	if !ok {
		return
	}
	neighbors := a.model.grid.Neighborhood(pos, false)
	dest := neighbors[rng.Intn(len(neighbors))]
	// Move cannot fail here: the agent was just found on the grid.
	_ = a.model.grid.Move(a, dest)
}

func (a *Agent) give(rng *rand.Rand) {
	pos, ok := a.model.grid.PositionOf(a.id)
	if !ok {
		return
	}
	cellmates := make([]*Agent, 0, 4)
	for _, occ := range a.model.grid.CellContents(pos) {
		if occ.ID() == a.id {
			continue
		}
		if other, ok := a.model.byID[occ.ID()]; ok {
			cellmates = append(cellmates, other)
		}
	}
	if len(cellmates) == 0 {
		return
	}
	other := cellmates[rng.Intn(len(cellmates))]
	other.wealth++
	a.wealth--
}
