// Package portray maps simulation entities to display records.
//
// The package defines the contract between a model and any rendering
// surface:
//
//   - [Entity]: read-only attribute access on one simulated agent
//   - [Record]: the display descriptor (color, size, shape)
//   - [Resolver]: the pure function deriving a Record from an Entity
//
// A Resolver holds an ordered list of [Rule] values evaluated in priority
// order; the first rule whose predicate matches the inspected attribute
// wins, and a mandatory fallback record covers the no-match case.
//
// # Example
//
//	res := portray.NewWealthResolver()
//	rec, err := res.Resolve(agent)
//
// # Thread Safety
//
// Resolvers are immutable after construction and hold no state between
// calls, so a single Resolver may be shared by any number of goroutines.
package portray
