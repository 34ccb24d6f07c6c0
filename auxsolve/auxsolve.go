// SPDX-License-Identifier: MIT
// Package auxsolve is the every-vertex-Dijkstra black box §4.10 ("Final
// step") and §6 ("sequential") both bottom out in: given a small enough
// weighted graph, run Dijkstra from every vertex and report the largest
// finite distance found, plus the pair of vertices realizing it. Diameter
// runs it over the contracted auxiliary graph random-ball clustering
// produces; SequentialDiameter runs it directly over a cluster's full,
// uncontracted edge set for the CLI's "sequential" algorithm.
package auxsolve

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/distgraph/diameter/core"
	"github.com/distgraph/diameter/diamerr"
	"github.com/distgraph/diameter/dijkstra"
	"github.com/distgraph/diameter/randcluster"
)

// ErrEmptyGraph indicates the graph under solve had no edges and therefore
// no diameter to report.
var ErrEmptyGraph = errors.New("auxsolve: graph has no edges")

// nodeID renders a uint32 node id as the string vertex id core.Graph expects.
func nodeID(n uint32) string { return strconv.FormatUint(uint64(n), 10) }

// parseNodeID is nodeID's inverse, used to recover the uint32 ids of the
// diameter-realizing pair after a Dijkstra sweep over string-keyed vertices.
func parseNodeID(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// buildGraph materializes the contracted auxiliary graph as a weighted,
// undirected core.Graph, one vertex per distinct cluster center.
func buildGraph(edges []randcluster.AuxEdge) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range edges {
		if err := addEdge(g, e.U, e.V, e.W); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// buildGraphFromSource materializes a weighted, undirected core.Graph from
// any edge-emitting source matching vflow.Cluster.ForEachEdge's shape —
// the full, uncontracted edge set for the "sequential" CLI algorithm.
func buildGraphFromSource(forEach func(fn func(u, v, weight uint32) error) error) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	err := forEach(func(u, v, w uint32) error {
		return addEdge(g, u, v, w)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func addEdge(g *core.Graph, u, v, w uint32) error {
	su, sv := nodeID(u), nodeID(v)
	if !g.HasVertex(su) {
		if err := g.AddVertex(su); err != nil {
			return fmt.Errorf("auxsolve: AddVertex(%s): %w", su, err)
		}
	}
	if !g.HasVertex(sv) {
		if err := g.AddVertex(sv); err != nil {
			return fmt.Errorf("auxsolve: AddVertex(%s): %w", sv, err)
		}
	}
	if _, err := g.AddEdge(su, sv, int64(w)); err != nil {
		return fmt.Errorf("auxsolve: AddEdge(%s,%s): %w", su, sv, err)
	}
	return nil
}

// Diameter computes the diameter of the auxiliary graph built from edges by
// running Dijkstra from every vertex (the graph is expected to be small —
// one vertex per cluster — so the O(V) sequential Dijkstra calls this
// implies are cheap relative to the distributed clustering pass that
// produced it). It returns the diameter and the pair of centers (u, v)
// realizing it, with u, v parsed back to the uint32 node ids randcluster
// assigned.
func Diameter(edges []randcluster.AuxEdge) (diameter int64, u, v uint32, err error) {
	g, err := buildGraph(edges)
	if err != nil {
		return 0, 0, 0, diamerr.Invariant("auxsolve.Diameter", err)
	}
	return solve(g)
}

// SequentialDiameter runs the same every-vertex-Dijkstra sweep directly
// over a cluster's full edge set (e.g. cluster.ForEachEdge), with no
// random-ball contraction step — the CLI's "sequential" algorithm token
// (§6), grounded in the original implementation's sequential::approx_diameter,
// which runs Dijkstra from every vertex of the whole graph rather than
// the distributed BFS dataflow bfsdiam implements.
func SequentialDiameter(forEach func(fn func(u, v, weight uint32) error) error) (diameter int64, u, v uint32, err error) {
	g, err := buildGraphFromSource(forEach)
	if err != nil {
		return 0, 0, 0, diamerr.Invariant("auxsolve.SequentialDiameter", err)
	}
	return solve(g)
}

// solve runs Dijkstra from every vertex of g and returns the largest finite
// distance found, plus the pair of vertices realizing it.
func solve(g *core.Graph) (diameter int64, u, v uint32, err error) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return 0, 0, 0, diamerr.Invariant("auxsolve.solve", ErrEmptyGraph)
	}

	var best int64
	var bestU, bestV string
	for _, src := range vertices {
		dist, derr := dijkstra.Dijkstra(g, src)
		if derr != nil {
			return 0, 0, 0, diamerr.Invariant("auxsolve.solve", derr)
		}
		for dst, d := range dist {
			if d == math.MaxInt64 || d <= best {
				continue
			}
			best, bestU, bestV = d, src, dst
		}
	}

	bu, err := parseNodeID(bestU)
	if err != nil {
		return 0, 0, 0, diamerr.Invariant("auxsolve.solve", err)
	}
	bv, err := parseNodeID(bestV)
	if err != nil {
		return 0, 0, 0, diamerr.Invariant("auxsolve.solve", err)
	}
	return best, bu, bv, nil
}
