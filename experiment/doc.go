// Package experiment drives walker comparisons: it generates graphs by kind,
// runs batches of seeded trials per agent and α, optionally lets an adversary
// rewire edges under the walker, and summarizes cover and hitting times.
//
// A run is described by Config (defaults, YAML file, RW_* environment) and
// executed by Runner, which hands one Summary per (graph, agent, α) to a
// callback. Simulate is the building block for a single combination and can
// be used on its own with any core.Graph.
//
// Trials are independent: trial i draws from a source seeded with Seed+i and,
// when attacks are enabled, walks its own clone of the graph. Summaries are
// therefore identical for any worker count.
package experiment
