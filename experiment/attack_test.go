package experiment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randwalk/builder"
	"github.com/katalvlaran/randwalk/centrality"
	"github.com/katalvlaran/randwalk/core"
	"github.com/katalvlaran/randwalk/walk"
)

func buildGraph(t *testing.T, ctor builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, ctor)
	require.NoError(t, err)

	return g
}

// walkThrough places an SRW agent on path[0] and moves it along path.
func walkThrough(t *testing.T, g *core.Graph, path ...int) *walk.Agent {
	t.Helper()
	a, err := walk.New(g, path[0], walk.SRW, walk.WithSeed(1))
	require.NoError(t, err)
	for _, v := range path[1:] {
		a.MoveTo(v)
	}

	return a
}

func TestAttack_RewiresTowardMostVisited(t *testing.T) {
	g := buildGraph(t, builder.Cycle(6))
	a := walkThrough(t, g, 1, 2, 1, 2, 3, 4)

	ok, err := Attack(a, g, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.True(t, ok)

	// 1 and 2 tie on visits; 1 wins on ID.
	assert.True(t, g.HasEdge(4, 1))
	assert.Equal(t, 6, g.EdgeCount())
	deg, err := g.Degree(4)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	assert.True(t, centrality.IsConnected(g))
}

func TestAttack_RejectsDisconnectingRewire(t *testing.T) {
	g := buildGraph(t, builder.Path(5))
	a := walkThrough(t, g, 4, 5, 4, 3, 2)

	for seed := int64(0); seed < 8; seed++ {
		h := g.Clone()
		ok, err := Attack(a, h, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.True(t, ok)

		// Dropping (2,1) would isolate 1, so (2,3) is always the edge replaced.
		assert.True(t, h.HasEdge(2, 4))
		assert.True(t, h.HasEdge(2, 1))
		assert.False(t, h.HasEdge(2, 3))
		assert.True(t, centrality.IsConnected(h))
	}
}

func TestAttack_NoCandidate(t *testing.T) {
	g := buildGraph(t, builder.Complete(4))
	a := walkThrough(t, g, 1, 2, 3)
	before := g.Edges()

	ok, err := Attack(a, g, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, g.Edges())
}

func TestMostVisited_Order(t *testing.T) {
	g := buildGraph(t, builder.Cycle(5))
	a := walkThrough(t, g, 3, 4, 3, 2, 3, 4)

	assert.Equal(t, []int{3, 4, 2}, mostVisited(a, g))
}
