// SPDX-License-Identifier: MIT
package randcluster

import (
	"github.com/distgraph/diameter/diamerr"
	"github.com/distgraph/diameter/vflow"
)

// AuxEdge is one edge of the contracted auxiliary graph: an edge between
// two distinct cluster centers, weighted by the minimum observed
// cᵤ–cᵥ path length routed through the original edge.
type AuxEdge struct {
	U, V uint32
	W    uint32
}

// flatten collapses the per-worker state partitions produced by Run into a
// single node -> State map.
func flatten(in []vflow.States[State]) map[uint32]State {
	out := make(map[uint32]State)
	for _, partition := range in {
		for n, s := range partition {
			out[n] = s
		}
	}
	return out
}

// Radii computes, for each cluster center, the maximum distance from that
// center to any node assigned to it (§4.10's "per-cluster radius").
func Radii(in []vflow.States[State]) map[uint32]int64 {
	radius := make(map[uint32]int64)
	for _, s := range flatten(in) {
		if s.Root == NoRoot {
			continue
		}
		if cur, ok := radius[s.Root]; !ok || s.Distance > cur {
			radius[s.Root] = s.Distance
		}
	}
	return radius
}

// Contract builds the auxiliary graph from the original edges (traversed
// via cluster.ForEachEdge) and the final clustering assignment: for each
// original edge (u, v, w) with cluster roots (cᵤ, dᵤ) and (cᵥ, dᵥ), it
// emits ((min(cᵤ,cᵥ), max(cᵤ,cᵥ)), w + dᵤ + dᵥ), keeping the minimum
// weight per (root pair) key. Self-loops within one cluster (cᵤ == cᵥ) are
// dropped — they never help the auxiliary diameter and would otherwise
// require the aux graph to tolerate loops it has no other use for.
func Contract(cluster *vflow.Cluster, in []vflow.States[State]) ([]AuxEdge, error) {
	assignment := flatten(in)
	if len(assignment) == 0 {
		return nil, diamerr.Invariant("randcluster.Contract", ErrEmptyCluster)
	}

	type key struct{ a, b uint32 }
	best := make(map[key]uint32)

	err := cluster.ForEachEdge(func(u, v, w uint32) error {
		su, suOK := assignment[u]
		sv, svOK := assignment[v]
		if !suOK || !svOK || su.Root == NoRoot || sv.Root == NoRoot {
			return nil
		}
		cu, cv := su.Root, sv.Root
		if cu == cv {
			return nil
		}
		if cu > cv {
			cu, cv = cv, cu
		}
		total := uint64(w) + uint64(su.Distance) + uint64(sv.Distance)
		if total > uint64(^uint32(0)) {
			total = uint64(^uint32(0))
		}
		k := key{cu, cv}
		if cur, ok := best[k]; !ok || uint32(total) < cur {
			best[k] = uint32(total)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	edges := make([]AuxEdge, 0, len(best))
	for k, w := range best {
		edges = append(edges, AuxEdge{U: k.a, V: k.b, W: w})
	}
	return edges, nil
}

// Diameter implements §4.10's final combination step:
//
//	diameter = max(max_cluster_radius, aux_diameter + radius[u] + radius[v])
//
// where (u, v) is the pair of aux-graph centers realizing aux_diameter.
// The caller supplies auxDiameter and (u, v) from a sequential solve over
// the Contract output (see the auxsolve package).
func Diameter(radius map[uint32]int64, auxDiameter int64, u, v uint32) int64 {
	var maxRadius int64
	for _, r := range radius {
		if r > maxRadius {
			maxRadius = r
		}
	}
	combined := auxDiameter + radius[u] + radius[v]
	if combined > maxRadius {
		return combined
	}
	return maxRadius
}
