// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn = OneBasedIDFn (1, 2, ..., n), so the walkers' default start
//     vertex 1 and target vertex n exist in every generated graph.
//   • rng  = nil; stochastic constructors fail with ErrNeedRandSource.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex ID strategy: zero-based index -> vertex ID.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: OneBasedIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
