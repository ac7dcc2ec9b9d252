// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// api.go - public entry point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every factory lives in its own impl_*.go file.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs, seed and constructor order give identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with the method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// Constructor applies one topology to g using the resolved builderConfig.
// Constructors validate their parameters before touching g, add vertices
// through cfg.idFn, and emit edges in a stable order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor, otherwise whatever the
//     constructor returned (branch with errors.Is against builder sentinels).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Deterministic:
//   Cycle(n)            ring C_n, n ≥ 3                    impl_cycle.go
//   Path(n)             path P_n, n ≥ 2                    impl_path.go
//   Star(n)             hub + n-1 leaves, n ≥ 2            impl_star.go
//   Wheel(n)            hub + rim C_{n-1}, n ≥ 4           impl_wheel.go
//   Complete(n)         K_n, n ≥ 1                         impl_complete.go
//   Grid(rows, cols)    4-neighborhood lattice             impl_grid.go
//   BinaryTree(n)       complete binary tree, heap order   impl_tree.go
//
// Stochastic (require WithSeed or WithRand):
//   RandomTree(n)               uniform attachment tree    impl_tree.go
//   RandomGNM(n, m)             connected, exactly m edges impl_random_gnm.go
//   BarabasiAlbert(n, m0, m)    preferential attachment    impl_barabasi.go
//   RandomRegular(n, d)         connected simple d-regular impl_random_regular.go
//   BARandom(n, m)              preferential G(n,m)        impl_barabasi_random.go
//   LiMaini(t, c, m0, m, alpha) communities + attachment   impl_li_maini.go
//   DegreeBounded(n, m)         G(n,m), degree ≤ ⌈2m/n⌉    impl_degree_bounded.go
