// Package randwalk compares graph-exploring random-walk agents by how fast
// they cover a graph and hit a target vertex.
//
// 🚀 What is randwalk?
//
//	An in-memory simulation toolkit that brings together:
//		• Graph storage: thread-safe undirected simple graph with int IDs
//		• Topologies: ring, lattice, trees, G(n,m), Barabási–Albert, d-regular, …
//		• Agents: SRW, degree-biased, non-backtracking, self-avoiding,
//		  Bloom-filter and k-history avoiding, vicinity-avoiding, lazy,
//		  centrality-biased and maximal-entropy walkers
//		• Experiments: parallel seeded trials, adversarial edge rewiring,
//		  mean ± 95% confidence summaries, Prometheus textfile metrics
//
// Under the hood, everything is organized in subpackages:
//
//	core/       — Graph, Edge and thread-safe primitives
//	builder/    — topology constructors with functional options
//	bfs/        — breadth-first search and connectivity
//	matrix/     — dense adjacency view and principal eigenpair (gonum)
//	centrality/ — eigenvector, closeness, betweenness, eccentricity (gonum)
//	bloom/      — fixed-size Bloom filter of visited vertices
//	history/    — bounded recent-vertex buffers (plain, FIFO, LRU)
//	walk/       — the Agent and its transition policies
//	stats/      — mean and 95% confidence interval
//	experiment/ — configuration, graph factory, trial driver, attack, metrics
//	report/     — TSV status lines and tables
//	cmd/rwsim/  — command-line driver
//
// Quick start:
//
//	go run ./cmd/rwsim compare -N 50 -a SRW,NBRW -g ring,lattice
package randwalk
