package registry_test

import (
	"testing"

	"github.com/distgraph/diameter/registry"
	"github.com/distgraph/diameter/shard"
	"github.com/stretchr/testify/require"
)

func TestOwnershipMapCorrectness(t *testing.T) {
	// worker 0 owns edges (0,1) and (1,2); worker 1 owns edge (2,3).
	bs0, err := shard.LoadFromMemory([][]shard.Edge{{{U: 0, V: 1, W: 1}, {U: 1, V: 2, W: 1}}}, false, shard.Offline)
	require.NoError(t, err)
	bs1, err := shard.LoadFromMemory([][]shard.Edge{{{U: 2, V: 3, W: 1}}}, false, shard.Offline)
	require.NoError(t, err)

	local0, err := registry.LocalOwned(bs0)
	require.NoError(t, err)
	local1, err := registry.LocalOwned(bs1)
	require.NoError(t, err)

	reg := registry.Build(map[int]map[uint32]struct{}{0: local0, 1: local1})

	require.ElementsMatch(t, []int{0}, reg.Owners(0))
	require.ElementsMatch(t, []int{0}, reg.Owners(1))
	require.ElementsMatch(t, []int{0, 1}, reg.Owners(2)) // touched by both shards
	require.ElementsMatch(t, []int{1}, reg.Owners(3))
	require.Nil(t, reg.Owners(99))

	// every edge's two endpoints have overlapping owner sets.
	overlap := func(a, b []int) bool {
		set := make(map[int]struct{}, len(a))
		for _, w := range a {
			set[w] = struct{}{}
		}
		for _, w := range b {
			if _, ok := set[w]; ok {
				return true
			}
		}
		return false
	}
	require.True(t, overlap(reg.Owners(1), reg.Owners(2)))
}
