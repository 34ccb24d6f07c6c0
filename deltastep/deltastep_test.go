package deltastep_test

import (
	"testing"

	"github.com/distgraph/diameter/deltastep"
	"github.com/distgraph/diameter/registry"
	"github.com/distgraph/diameter/shard"
	"github.com/distgraph/diameter/vflow"
	"github.com/stretchr/testify/require"
)

// seed scenario from spec.md §8: chain (0,1),(1,2),(2,3),(3,4) with weights
// 2,3,1,4 and delta=2, root=0, expected SSSP distance to node 4 = 10.
func TestDeltaSteppingSeedScenario(t *testing.T) {
	edges := []shard.Edge{
		{U: 0, V: 1, W: 2},
		{U: 1, V: 2, W: 3},
		{U: 2, V: 3, W: 1},
		{U: 3, V: 4, W: 4},
	}
	bs, err := shard.LoadFromMemory([][]shard.Edge{edges}, true, shard.Offline)
	require.NoError(t, err)
	local, err := registry.LocalOwned(bs)
	require.NoError(t, err)
	reg := registry.Build(map[int]map[uint32]struct{}{0: local})
	cluster := vflow.NewCluster([]*shard.BlockSet{bs}, reg)

	ecc, err := deltastep.Run(cluster, 0, 2, 100, 100)
	require.NoError(t, err)
	require.Equal(t, int64(10), ecc)
}

func TestDeltaRangeValidation(t *testing.T) {
	_, err := deltastep.Run(nil, 0, 0, 10, 10)
	require.ErrorIs(t, err, deltastep.ErrDeltaRange)
}
