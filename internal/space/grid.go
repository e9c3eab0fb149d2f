package space

import (
	"errors"
	"fmt"
)

// Domain errors for grid operations.
var (
	// ErrNotPlaced indicates an occupant that has no position on the grid.
	ErrNotPlaced = errors.New("space: occupant not placed on grid")

	// ErrAlreadyPlaced indicates a second placement of the same occupant.
	ErrAlreadyPlaced = errors.New("space: occupant already placed")

	// ErrBadDimensions indicates a grid with non-positive width or height.
	ErrBadDimensions = errors.New("space: grid dimensions must be positive")
)

// Position is a cell coordinate. On a torus grid every coordinate is
// valid; it is wrapped into range on use.
type Position struct {
	X, Y int
}

// Occupant is anything that can live in a grid cell.
type Occupant interface {
	ID() int
}

// Grid is a torus multi-grid: coordinates wrap at the edges and a cell
// may hold any number of occupants. Not safe for concurrent mutation.
type Grid struct {
	width, height int
	cells         [][][]Occupant
	positions     map[int]Position
}

func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	cells := make([][][]Occupant, height)
	for y := range cells {
		cells[y] = make([][]Occupant, width)
	}
	return &Grid{
		width:     width,
		height:    height,
		cells:     cells,
		positions: make(map[int]Position),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Wrap maps any coordinate onto the torus.
func (g *Grid) Wrap(p Position) Position {
	x := ((p.X % g.width) + g.width) % g.width
	y := ((p.Y % g.height) + g.height) % g.height
	return Position{X: x, Y: y}
}

// Place puts an occupant at p. Placing an occupant twice is an error;
// use Move to relocate.
func (g *Grid) Place(o Occupant, p Position) error {
	if _, ok := g.positions[o.ID()]; ok {
		return fmt.Errorf("%w: id %d", ErrAlreadyPlaced, o.ID())
	}
	p = g.Wrap(p)
	g.cells[p.Y][p.X] = append(g.cells[p.Y][p.X], o)
	g.positions[o.ID()] = p
	return nil
}

// Move relocates a placed occupant to p.
func (g *Grid) Move(o Occupant, p Position) error {
	cur, ok := g.positions[o.ID()]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotPlaced, o.ID())
	}
	g.removeFromCell(o, cur)
	p = g.Wrap(p)
	g.cells[p.Y][p.X] = append(g.cells[p.Y][p.X], o)
	g.positions[o.ID()] = p
	return nil
}

// Remove takes an occupant off the grid entirely.
func (g *Grid) Remove(o Occupant) error {
	cur, ok := g.positions[o.ID()]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotPlaced, o.ID())
	}
	g.removeFromCell(o, cur)
	delete(g.positions, o.ID())
	return nil
}

func (g *Grid) removeFromCell(o Occupant, p Position) {
	cell := g.cells[p.Y][p.X]
	for i, occ := range cell {
		if occ.ID() == o.ID() {
			g.cells[p.Y][p.X] = append(cell[:i], cell[i+1:]...)
			return
		}
	}
}

// PositionOf returns the current position of an occupant by id.
func (g *Grid) PositionOf(id int) (Position, bool) {
	p, ok := g.positions[id]
	return p, ok
}

// CellContents returns the occupants of the cell at p, in placement
// order. The returned slice is a copy.
func (g *Grid) CellContents(p Position) []Occupant {
	p = g.Wrap(p)
	cell := g.cells[p.Y][p.X]
	out := make([]Occupant, len(cell))
	copy(out, cell)
	return out
}

// CountAt returns the number of occupants in the cell at p.
func (g *Grid) CountAt(p Position) int {
	p = g.Wrap(p)
	return len(g.cells[p.Y][p.X])
}

// Occupants returns the total number of placed occupants.
func (g *Grid) Occupants() int { return len(g.positions) }

// Neighborhood returns the Moore neighborhood of p on the torus. With
// includeCenter false the result has exactly 8 positions.
func (g *Grid) Neighborhood(p Position, includeCenter bool) []Position {
	p = g.Wrap(p)
	out := make([]Position, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 && !includeCenter {
				continue
			}
			out = append(out, g.Wrap(Position{X: p.X + dx, Y: p.Y + dy}))
		}
	}
	return out
}
