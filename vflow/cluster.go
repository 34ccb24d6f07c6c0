// SPDX-License-Identifier: MIT
package vflow

import (
	"github.com/distgraph/diameter/diamerr"
	"github.com/distgraph/diameter/registry"
	"github.com/distgraph/diameter/shard"
	"github.com/distgraph/diameter/stats"
)

// Cluster coordinates NumWorkers logical workers cooperating over one
// logical graph. Each worker owns a disjoint BlockSet shard; node *state*
// (as opposed to edge ownership) is partitioned independently by
// node_id mod NumWorkers, matching §4.4's registry being a separate
// structure from where any given node's iteration state happens to live.
//
// This is an in-process simulation of the multi-process exchange model of
// §5: each worker is a goroutine-free logical partition, and Send/BranchAll
// below perform the three-stage pipeline as a single sequential pass per
// call rather than as a suspend/resume cooperative scheduler. The hand-off
// points (Stage 1 fan-out, Stage 2 edge traversal, Stage 3 delivery) are
// kept as distinct steps so the code mirrors the spec's pipeline even
// though no network boundary is actually crossed. cmd/diameter also runs a
// single in-process Cluster over all worker shards; Send and BranchAll do
// not use transport.Conn.
type Cluster struct {
	shards []*shard.BlockSet
	reg    *registry.Registry
}

// NewCluster builds a Cluster over the given per-worker shards and the
// (already-built) global ownership registry.
func NewCluster(shards []*shard.BlockSet, reg *registry.Registry) *Cluster {
	return &Cluster{shards: shards, reg: reg}
}

// NumWorkers reports how many logical workers this cluster has.
func (c *Cluster) NumWorkers() int { return len(c.shards) }

// StateOwner returns which worker's partition holds the iteration state for
// node n, independent of which worker(s) own n's incident edges.
func StateOwner(n uint32, numWorkers int) int {
	if numWorkers <= 0 {
		return 0
	}
	return int(n) % numWorkers
}

// States is a per-worker partition of node_id -> state, keyed the same way
// Cluster partitions state ownership (StateOwner).
type States[S any] map[uint32]S

// NewStates returns numWorkers empty state partitions.
func NewStates[S any](numWorkers int) []States[S] {
	out := make([]States[S], numWorkers)
	for i := range out {
		out[i] = make(States[S])
	}
	return out
}

// Send runs one full three-stage pipeline at timestamp t (§4.5) and returns
// the updated per-worker state partitions plus this call's IterationStats.
//
// Stage 1 (state fan-out): for every node whose current state satisfies
// ShouldSend, the state is routed to every worker that owns an incident
// edge (via the registry).
//
// Stage 2 (edge traversal): each worker scans its own shard exactly once;
// for every edge (u, v, w) where the fanned-out state for u (or v) is
// present, Message is computed and merged into the per-destination
// aggregate via Aggregate.
//
// Stage 3 (delivery & update): aggregated messages are routed to the
// worker owning the destination node's state and folded in via Update (or
// Update applied to Default, if WithDefault); nodes with no incoming
// message get UpdateNoMsg.
func Send[S any, M any](c *Cluster, t Timestamp, in []States[S], cb Callbacks[S, M]) ([]States[S], stats.IterationStats, error) {
	numWorkers := c.NumWorkers()
	var st stats.IterationStats

	// Stage 1: fan out sending states to every edge-owning worker.
	inbox := make([]map[uint32]S, numWorkers)
	for i := range inbox {
		inbox[i] = make(map[uint32]S)
	}
	for _, partition := range in {
		for n, s := range partition {
			if !cb.ShouldSend(t, s) {
				continue
			}
			st.ActiveNodes++
			for _, w := range c.reg.Owners(n) {
				inbox[w][n] = s
			}
		}
	}

	// Stage 2: each worker traverses its own shard once, producing a local
	// destination -> message map, which is then merged globally since a
	// destination can be reached from edges owned by several workers.
	globalMsgs := make(map[uint32]M)
	for w := 0; w < numWorkers; w++ {
		local := make(map[uint32]M)
		err := c.shards[w].ForEach(func(u, v, weight uint32) error {
			if su, ok := inbox[w][u]; ok {
				if m, ok := cb.Message(t, su, weight); ok {
					mergeInto(local, v, m, cb.Aggregate)
				}
			}
			if sv, ok := inbox[w][v]; ok {
				if m, ok := cb.Message(t, sv, weight); ok {
					mergeInto(local, u, m, cb.Aggregate)
				}
			}
			return nil
		})
		if err != nil {
			return nil, st, diamerr.Invariant("vflow.Send", err)
		}
		for n, m := range local {
			mergeInto(globalMsgs, n, m, cb.Aggregate)
		}
	}
	st.MessagesSent = int64(len(globalMsgs))

	// Stage 3: deliver aggregated messages to the state-owning worker and
	// update; nodes with no message carry forward via UpdateNoMsg.
	out := NewStates[S](numWorkers)

	seen := make([]map[uint32]bool, numWorkers)
	for w := range seen {
		seen[w] = make(map[uint32]bool)
	}

	for w, partition := range in {
		for n, s := range partition {
			seen[w][n] = true
			if m, ok := globalMsgs[n]; ok {
				out[w][n] = cb.Update(s, m)
			} else {
				out[w][n] = cb.UpdateNoMsg(s)
			}
		}
	}

	if cb.WithDefault {
		for n, m := range globalMsgs {
			owner := StateOwner(n, numWorkers)
			if seen[owner][n] {
				continue // already updated above from existing state
			}
			out[owner][n] = cb.Update(cb.Default(), m)
		}
	}

	return out, st, nil
}

// ForEachEdge traverses every edge across all shards in the cluster exactly
// once, in worker order. Unlike Send, which routes per-node state along
// edges for one iteration, this gives an offline post-processing step (such
// as random-ball contraction, §4.10) access to the whole edge set directly.
func (c *Cluster) ForEachEdge(fn func(u, v, weight uint32) error) error {
	for _, bs := range c.shards {
		if err := bs.ForEach(fn); err != nil {
			return diamerr.Invariant("vflow.Cluster.ForEachEdge", err)
		}
	}
	return nil
}

// mergeInto aggregates m into dst[key] using agg, or inserts it directly if
// dst has no entry yet.
func mergeInto[M any](dst map[uint32]M, key uint32, m M, agg func(a, b M) M) {
	if existing, ok := dst[key]; ok {
		dst[key] = agg(existing, m)
	} else {
		dst[key] = m
	}
}
