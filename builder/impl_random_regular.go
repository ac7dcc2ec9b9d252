// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Model:
//   • Connected simple d-regular graph via stub matching with bounded retries.
//   • Each attempt shuffles the n·d stubs and pairs them consecutively. A
//     pairing is accepted only if it has no loops, no repeated pairs and a
//     single component; it is validated before the graph is touched.
//
// Contract:
//   • 1 ≤ d < n and n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed after MaxConstructAttempts rejected pairings.
//
// Complexity:
//   • Per attempt O(n·d) time and space; expected attempts ≈ exp((d²-1)/4).

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// RandomRegular returns a Constructor that builds a connected d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if d < 1 || d >= n {
			return fmt.Errorf("%s: degree must be in [1,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if err := needRand(MethodRandomRegular, cfg); err != nil {
			return err
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= MaxConstructAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !acceptPairing(stubs, n) {
				continue
			}
			if err := addVertices(g, MethodRandomRegular, n, cfg.idFn); err != nil {
				return err
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := link(g, MethodRandomRegular, cfg.idFn, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no connected simple pairing after %d attempts: %w",
			MethodRandomRegular, MaxConstructAttempts, ErrConstructFailed)
	}
}

// acceptPairing reports whether consecutive stub pairs form a connected
// simple graph on n vertices.
func acceptPairing(stubs []int, n int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	ds := newDisjointSet(n)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		ds.union(u, v)
	}

	return ds.sets == 1
}
