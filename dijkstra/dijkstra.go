// SPDX-License-Identifier: MIT
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/distgraph/diameter/core"
)

// Dijkstra computes shortest distances from source to every vertex in g,
// returning math.MaxInt64 for vertices source cannot reach.
//
// Preconditions, validated in order: source non-empty, g non-nil, g
// weighted, source present in g, no negative edge weight anywhere in g.
func Dijkstra(g *core.Graph, source string) (dist map[string]int64, err error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s-%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	dist = make(map[string]int64, len(vertices))
	visited := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		dist[v] = math.MaxInt64
		visited[v] = false
	}
	dist[source] = 0

	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true

		neighbors, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, fmt.Errorf("dijkstra: neighbors of %q: %w", u, nerr)
		}
		for _, e := range neighbors {
			newDist := d + e.Weight
			if newDist >= dist[e.To] {
				continue
			}
			dist[e.To] = newDist
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return dist, nil
}

// nodeItem is one entry in the lazy-decrease-key priority queue.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Stale
// entries (superseded by a shorter later push) are dropped lazily when
// popped, by checking visited[id] rather than removing them up front.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
