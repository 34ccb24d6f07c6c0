// SPDX-License-Identifier: MIT
// Package registry implements the distributed edges registry (C4): an
// immutable, once-built mapping from node id to the sorted list of worker
// ids that own at least one edge incident to that node.
//
// Construction follows §4.4's two dataflow stages: each worker first scans
// its own shard to produce a local, deduplicated set of touched node ids
// (LocalOwned); the per-worker sets are then exchanged and merged by node id
// (Build) into the final immutable Registry, which is shared read-only with
// every subsequent operator on that worker.
package registry

import (
	"sort"

	"github.com/distgraph/diameter/diamerr"
	"github.com/distgraph/diameter/shard"
)

// Registry is an immutable node_id -> sorted worker_id list. The zero value
// is not usable; construct with Build.
type Registry struct {
	owners map[uint32][]int
}

// LocalOwned scans bs once and returns the set of node ids touched by at
// least one edge in this worker's shard (stage 1 of §4.4), deduplicated.
func LocalOwned(bs *shard.BlockSet) (map[uint32]struct{}, error) {
	seen := make(map[uint32]struct{})
	err := bs.ForEach(func(u, v, _ uint32) error {
		seen[u] = struct{}{}
		seen[v] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, diamerr.Format("registry.LocalOwned", err)
	}
	return seen, nil
}

// Build merges every worker's LocalOwned set (keyed by worker id) into the
// final Registry (stage 2 of §4.4 — the exchange-by-node_id-mod-workers is
// the caller's responsibility via transport; Build performs the per-node
// merge once all partitions have arrived).
func Build(perWorker map[int]map[uint32]struct{}) *Registry {
	owners := make(map[uint32][]int)
	for workerID, nodes := range perWorker {
		for n := range nodes {
			owners[n] = append(owners[n], workerID)
		}
	}
	for n := range owners {
		sort.Ints(owners[n])
	}
	return &Registry{owners: owners}
}

// Owners returns the sorted, deduplicated list of worker ids owning at
// least one edge incident to n, or nil if n is unknown to the registry.
func (r *Registry) Owners(n uint32) []int {
	return r.owners[n]
}

// NumNodes reports how many distinct node ids the registry covers.
func (r *Registry) NumNodes() int { return len(r.owners) }

// Nodes returns every node id the registry covers, in no particular order.
// Callers that need a stable order should sort the result themselves.
func (r *Registry) Nodes() []uint32 {
	out := make([]uint32, 0, len(r.owners))
	for n := range r.owners {
		out = append(out, n)
	}
	return out
}
