package hyperball_test

import (
	"testing"

	"github.com/distgraph/diameter/builder"
	"github.com/distgraph/diameter/hyperball"
	"github.com/distgraph/diameter/registry"
	"github.com/distgraph/diameter/shard"
	"github.com/distgraph/diameter/vflow"
	"github.com/stretchr/testify/require"
)

// seed scenario from spec.md §8: HyperBall with p=10 on a star of 1000
// leaves, expected eccentricity = 2.
func TestHyperBallSeedScenario(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(1001))
	require.NoError(t, err)

	edges, ids, err := builder.ToShard(g)
	require.NoError(t, err)
	_, hasCenter := ids["Center"]
	require.True(t, hasCenter)

	bs, err := shard.LoadFromMemory([][]shard.Edge{edges}, true, shard.Offline)
	require.NoError(t, err)
	local, err := registry.LocalOwned(bs)
	require.NoError(t, err)
	reg := registry.Build(map[int]map[uint32]struct{}{0: local})
	cluster := vflow.NewCluster([]*shard.BlockSet{bs}, reg)

	ecc, err := hyperball.Run(cluster, reg, 10, 100)
	require.NoError(t, err)
	require.Equal(t, int64(2), ecc)
}

func TestHyperBallPrecisionValidation(t *testing.T) {
	_, err := hyperball.Run(nil, nil, 255, 10)
	require.Error(t, err)
}
