package auxsolve_test

import (
	"testing"

	"github.com/distgraph/diameter/auxsolve"
	"github.com/distgraph/diameter/randcluster"
	"github.com/stretchr/testify/require"
)

func TestDiameterSimpleChain(t *testing.T) {
	// aux graph 0-1-2 with weights 3,4: diameter is 7 between 0 and 2.
	edges := []randcluster.AuxEdge{
		{U: 0, V: 1, W: 3},
		{U: 1, V: 2, W: 4},
	}
	d, u, v, err := auxsolve.Diameter(edges)
	require.NoError(t, err)
	require.Equal(t, int64(7), d)
	require.ElementsMatch(t, []uint32{0, 2}, []uint32{u, v})
}

func TestDiameterEmptyGraph(t *testing.T) {
	_, _, _, err := auxsolve.Diameter(nil)
	require.ErrorIs(t, err, auxsolve.ErrEmptyGraph)
}

func TestSequentialDiameterWalksFullEdgeSet(t *testing.T) {
	// Same chain 0-1-2, but presented as a raw edge source rather than
	// post-contraction AuxEdges, the way cluster.ForEachEdge would.
	edges := []randcluster.AuxEdge{
		{U: 0, V: 1, W: 3},
		{U: 1, V: 2, W: 4},
	}
	forEach := func(fn func(u, v, weight uint32) error) error {
		for _, e := range edges {
			if err := fn(e.U, e.V, e.W); err != nil {
				return err
			}
		}
		return nil
	}

	d, u, v, err := auxsolve.SequentialDiameter(forEach)
	require.NoError(t, err)
	require.Equal(t, int64(7), d)
	require.ElementsMatch(t, []uint32{0, 2}, []uint32{u, v})
}

func TestSequentialDiameterEmptySource(t *testing.T) {
	_, _, _, err := auxsolve.SequentialDiameter(func(func(u, v, weight uint32) error) error { return nil })
	require.ErrorIs(t, err, auxsolve.ErrEmptyGraph)
}
