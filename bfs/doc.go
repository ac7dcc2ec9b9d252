// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Result carries Order (visit sequence), Depth and Parent (BFS tree).
//   - OnVisit hook; returning ErrStop ends the search early.
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the search.
//   - Connected(g) is the single-source reachability check used after every
//     adversarial rewire.
//
// Determinism
//
//	core.Graph returns neighbors sorted by ID and BFS enqueues them in that
//	order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreachable          from Result.PathTo for unreached vertices.
//   - The context error, or a wrapped OnVisit error.
package bfs
