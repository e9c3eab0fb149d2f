package viz

import (
	"strings"

	"github.com/san-kum/agentviz/internal/portray"
	"github.com/san-kum/agentviz/internal/space"
	"github.com/san-kum/agentviz/internal/wealth"
)

// RenderGrid draws the model grid, one marker per cell. Occupied cells
// show the portrayal record of their wealthiest occupant; an occupancy
// digit follows the marker when agents overlap.
func RenderGrid(m *wealth.Model, res *portray.Resolver) (string, error) {
	grid := m.Grid()
	var b strings.Builder

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := space.Position{X: x, Y: y}
			occupants := grid.CellContents(p)
			if len(occupants) == 0 {
				b.WriteString(emptyCell.Render("· "))
				continue
			}

			top := topAgent(m, occupants)
			rec, err := res.Resolve(top)
			if err != nil {
				return "", err
			}

			b.WriteString(MarkerStyle(rec).Render(MarkerGlyph(rec)))
			if n := len(occupants); n > 1 {
				b.WriteString(countStyle.Render(overlapDigit(n)))
			} else {
				b.WriteString(" ")
			}
		}
		if y < grid.Height()-1 {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

// topAgent picks the wealthiest occupant, breaking ties by lowest id.
// Selection is independent of placement order, so redraws are stable.
func topAgent(m *wealth.Model, occupants []space.Occupant) *wealth.Agent {
	var best *wealth.Agent
	for _, occ := range occupants {
		a, ok := m.AgentAt(occ.ID())
		if !ok {
			continue
		}
		if best == nil || a.Wealth() > best.Wealth() ||
			(a.Wealth() == best.Wealth() && a.ID() < best.ID()) {
			best = a
		}
	}
	return best
}

func overlapDigit(n int) string {
	if n > 9 {
		return "+"
	}
	return string(rune('0' + n))
}
