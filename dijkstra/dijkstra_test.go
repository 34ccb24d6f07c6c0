// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/distgraph/diameter/core"
	"github.com/distgraph/diameter/dijkstra"
	"github.com/stretchr/testify/require"
)

func chainGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, v := range []string{"0", "1", "2"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("0", "1", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 4)
	require.NoError(t, err)
	return g
}

func TestDijkstraChainDistances(t *testing.T) {
	dist, err := dijkstra.Dijkstra(chainGraph(t), "0")
	require.NoError(t, err)
	require.Equal(t, int64(0), dist["0"])
	require.Equal(t, int64(3), dist["1"])
	require.Equal(t, int64(7), dist["2"])
}

func TestDijkstraUnreachableVertexIsMaxInt64(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	dist, err := dijkstra.Dijkstra(g, "a")
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), dist["b"])
}

func TestDijkstraRejectsEmptySource(t *testing.T) {
	_, err := dijkstra.Dijkstra(chainGraph(t), "")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstraRejectsNilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, "0")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstraRejectsUnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0"))
	_, err := dijkstra.Dijkstra(g, "0")
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
}

func TestDijkstraRejectsMissingSource(t *testing.T) {
	_, err := dijkstra.Dijkstra(chainGraph(t), "missing")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstraRejectsNegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	_, err := g.AddEdge("a", "b", -1)
	require.NoError(t, err)
	_, err = dijkstra.Dijkstra(g, "a")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstraPicksShorterOfTwoPaths(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("a", "b", 10)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "d", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("d", "b", 1)
	require.NoError(t, err)

	dist, err := dijkstra.Dijkstra(g, "a")
	require.NoError(t, err)
	require.Equal(t, int64(3), dist["b"])
}
