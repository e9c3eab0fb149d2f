// Package viz provides terminal-based visualization for agent models.
//
// The package implements a live TUI using the Bubble Tea framework:
//
//   - [Model]: the interactive view stepping a wealth model in place
//   - grid panel: one cell per grid position, colored by each agent's
//     portrayal record
//   - chart panel: collector time series rendered with asciigraph
//   - histogram panel: the current wealth distribution as unicode bars
//
// # Key Bindings
//
//	Space   - Pause/Resume
//	R       - Reset with the same seed
//	N       - Reset with a fresh seed
//	T       - Cycle color themes
//	Tab     - Select next run parameter
//	Up/Down - Adjust the selected parameter
//	Enter   - Rebuild the model with the adjusted parameters
//	Q       - Quit
//
// # Overlapping Agents
//
// A cell may hold several agents but renders one marker. The cell shows
// the record of its wealthiest occupant, a deterministic choice that
// does not depend on placement order, plus an occupancy digit when more
// than one agent shares the cell.
package viz
