package shard_test

import (
	"testing"

	"github.com/distgraph/diameter/shard"
	"github.com/stretchr/testify/require"
)

func TestEdgeSetCompleteness(t *testing.T) {
	edges := []shard.Edge{
		{U: 0, V: 1, W: 5},
		{U: 1, V: 2, W: 7},
		{U: 2, V: 3, W: 1},
		{U: 0, V: 1, W: 5}, // duplicate, must be deduplicated
	}
	bs, err := shard.LoadFromMemory([][]shard.Edge{edges}, true, shard.Offline)
	require.NoError(t, err)

	var seen []shard.Edge
	err = bs.ForEach(func(u, v, w uint32) error {
		seen = append(seen, shard.Edge{U: u, V: v, W: w})
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, 3)
	for _, e := range seen {
		require.LessOrEqual(t, e.U, e.V)
	}
}

func TestDefaultWeightWithoutWeightsStream(t *testing.T) {
	edges := []shard.Edge{{U: 0, V: 1, W: 99}}
	bs, err := shard.LoadFromMemory([][]shard.Edge{edges}, false, shard.Offline)
	require.NoError(t, err)

	var gotW uint32
	err = bs.ForEach(func(u, v, w uint32) error {
		gotW = w
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, shard.DefaultWeight, gotW)
}

func TestTotalNodes(t *testing.T) {
	edges := []shard.Edge{{U: 0, V: 4, W: 1}, {U: 2, V: 3, W: 1}}
	bs, err := shard.LoadFromMemory([][]shard.Edge{edges}, false, shard.Offline)
	require.NoError(t, err)
	require.Equal(t, uint32(5), bs.TotalNodes())
}

func TestOnDemandMatchesOffline(t *testing.T) {
	edges := []shard.Edge{{U: 0, V: 1, W: 2}, {U: 1, V: 5, W: 3}, {U: 3, V: 5, W: 4}}

	offline, err := shard.LoadFromMemory([][]shard.Edge{edges}, true, shard.Offline)
	require.NoError(t, err)
	onDemand, err := shard.LoadFromMemory([][]shard.Edge{edges}, true, shard.OnDemand)
	require.NoError(t, err)

	var a, b []shard.Edge
	require.NoError(t, offline.ForEach(func(u, v, w uint32) error {
		a = append(a, shard.Edge{U: u, V: v, W: w})
		return nil
	}))
	require.NoError(t, onDemand.ForEach(func(u, v, w uint32) error {
		b = append(b, shard.Edge{U: u, V: v, W: w})
		return nil
	}))
	require.Equal(t, a, b)

	// OnDemand must tolerate being iterated more than once.
	var c []shard.Edge
	require.NoError(t, onDemand.ForEach(func(u, v, w uint32) error {
		c = append(c, shard.Edge{U: u, V: v, W: w})
		return nil
	}))
	require.Equal(t, b, c)
}

func TestAssignBlockRoundRobin(t *testing.T) {
	require.Equal(t, 0, shard.AssignBlock(0, 3))
	require.Equal(t, 1, shard.AssignBlock(1, 3))
	require.Equal(t, 2, shard.AssignBlock(2, 3))
	require.Equal(t, 0, shard.AssignBlock(3, 3))
}
