// SPDX-License-Identifier: MIT
// Package core is a small in-memory weighted undirected graph, sized for
// exactly two jobs in this pipeline: the deterministic fixture topologies
// builder assembles for tests (Path, Star, Grid), and the contracted
// auxiliary graph random-ball clustering produces (§4.10) — one vertex per
// cluster center, handed to dijkstra for the sequential diameter finish.
//
// Both graphs are small enough to live on one worker's heap; neither needs
// directed edges, self-loops, multi-edges, or adjacency-matrix views, so
// this package carries none of that. A vertex is added once via AddVertex
// and referenced by a caller-chosen string ID; an edge is added once via
// AddEdge and is traversable from both endpoints.
package core
