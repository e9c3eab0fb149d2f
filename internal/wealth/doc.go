// Package wealth implements a Boltzmann-style money exchange model.
//
// Agents start with one unit of wealth on a torus grid. Each step every
// agent moves to a random Moore neighbor and, if it holds any wealth,
// gives one unit to a random agent sharing its cell. Despite the
// symmetric rule the wealth distribution drifts toward inequality,
// which the [Gini] collector tracks per step.
//
// Agents satisfy portray.Entity, exposing a "wealth" attribute for
// display resolution.
package wealth
