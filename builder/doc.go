// Package builder generates the test topologies random walkers are compared
// on: rings, paths, stars, wheels, complete graphs, lattices, binary and
// random trees, connected G(n,m) random graphs, Barabási–Albert scale-free
// graphs and connected random regular graphs.
//
// Every topology is a Constructor closure; BuildGraph creates a core.Graph
// and applies one or more constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithName("ba")},
//		[]builder.BuilderOption{builder.WithSeed(1)},
//		builder.BarabasiAlbert(100, 10, 2),
//	)
//
// Guarantees:
//
//   - Vertex IDs come from the configured IDFn; the default numbers vertices
//     1..n so that vertex 1 and vertex n always exist.
//   - Same options, seed and constructor order give identical graphs.
//   - Every generated graph is connected: trees and Barabási–Albert graphs by
//     construction, RandomGNM through its spanning tree, RandomRegular by
//     rejecting disconnected pairings.
//   - Invalid parameters return sentinel errors (ErrTooFewVertices,
//     ErrInvalidEdgeCount, ErrNeedRandSource, ErrConstructFailed) wrapped with
//     the method name; option constructors panic on nil arguments.
package builder
