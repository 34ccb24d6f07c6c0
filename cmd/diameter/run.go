// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/distgraph/diameter/auxsolve"
	"github.com/distgraph/diameter/bfsdiam"
	"github.com/distgraph/diameter/config"
	"github.com/distgraph/diameter/deltastep"
	"github.com/distgraph/diameter/hyperball"
	"github.com/distgraph/diameter/randcluster"
	"github.com/distgraph/diameter/registry"
	"github.com/distgraph/diameter/shard"
	"github.com/distgraph/diameter/vflow"
)

// maxIterations bounds every algorithm's defensive iteration caps; a real
// cluster-sized run would derive this from the dataset, but a fixed
// generous ceiling is enough for the fixture-sized graphs this CLI targets.
const maxIterations = 10000

// loadShards opens one block per worker thread from the dataset's directory
// under rc.DataDir, following the part-{k}.bin / weights-{k}.bin naming
// convention (§3/§6): thread k reads ddir/<dataset>/part-{k}.bin and, if
// present, ddir/<dataset>/weights-{k}.bin.
func loadShards(rc config.RunConfig) ([]*shard.BlockSet, error) {
	shards := make([]*shard.BlockSet, rc.Threads)
	for k := 0; k < rc.Threads; k++ {
		edgesPath := filepath.Join(rc.DataDir, rc.Dataset, fmt.Sprintf("part-%d.bin", k))
		weightsPath := filepath.Join(rc.DataDir, rc.Dataset, fmt.Sprintf("weights-%d.bin", k))
		if !fileExists(weightsPath) {
			weightsPath = ""
		}
		bs, err := shard.Load([]shard.BlockPath{{EdgesPath: edgesPath, WeightsPath: weightsPath}}, shard.Offline)
		if err != nil {
			return nil, err
		}
		shards[k] = bs
	}
	return shards, nil
}

func buildRegistry(shards []*shard.BlockSet) (*registry.Registry, error) {
	perWorker := make(map[int]map[uint32]struct{}, len(shards))
	for w, bs := range shards {
		local, err := registry.LocalOwned(bs)
		if err != nil {
			return nil, err
		}
		perWorker[w] = local
	}
	return registry.Build(perWorker), nil
}

// Run dispatches to the selected algorithm and returns its diameter value
// d; the caller reports every algorithm's result the same way, as
// "Diameter in [d, 2d]".
func Run(rc config.RunConfig, log zerolog.Logger) (int64, error) {
	shards, err := loadShards(rc)
	if err != nil {
		return 0, err
	}
	reg, err := buildRegistry(shards)
	if err != nil {
		return 0, err
	}
	cluster := vflow.NewCluster(shards, reg)

	switch rc.Algorithm.Kind {
	case config.Sequential:
		// §6: "sequential" is a direct every-vertex-Dijkstra sweep over the
		// full, uncontracted edge set — the same black box auxsolve wraps
		// for randcluster's final step — never the distributed BFS
		// dataflow bfsdiam.Run implements.
		diameter, _, _, derr := auxsolve.SequentialDiameter(cluster.ForEachEdge)
		return diameter, derr

	case config.BFS:
		root := bfsdiam.PickRoot(int64(rc.Seed), uint32(reg.NumNodes()))
		return bfsdiam.Run(cluster, root, maxIterations)

	case config.DeltaStepping:
		root := bfsdiam.PickRoot(int64(rc.Seed), uint32(reg.NumNodes()))
		return deltastep.Run(cluster, root, int64(rc.Algorithm.Param), maxIterations, maxIterations)

	case config.HyperBall:
		return hyperball.Run(cluster, reg, uint8(rc.Algorithm.Param), maxIterations)

	case config.RandCluster:
		states, err := randcluster.Run(cluster, reg, int64(rc.Algorithm.Param), int64(rc.Seed), maxIterations, maxIterations)
		if err != nil {
			return 0, err
		}
		radius := randcluster.Radii(states)
		aux, err := randcluster.Contract(cluster, states)
		if err != nil {
			return 0, err
		}
		if len(aux) == 0 {
			var maxRadius int64
			for _, r := range radius {
				if r > maxRadius {
					maxRadius = r
				}
			}
			return maxRadius, nil
		}
		auxDiameter, u, v, err := auxsolve.Diameter(aux)
		if err != nil {
			return 0, err
		}
		return randcluster.Diameter(radius, auxDiameter, u, v), nil

	default:
		return 0, config.ErrUnknownAlgorithm
	}
}
