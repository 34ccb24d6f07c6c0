// SPDX-License-Identifier: MIT
// Package dijkstra is the sequential shortest-path solver auxsolve runs
// against the small auxiliary graph (§4.10 "Final step"): one Dijkstra
// sweep per vertex, over a graph small enough that no distributed
// scheduling is warranted. It only needs distances, not paths, so the
// surface is a single call taking a source vertex and returning the
// distance to every other vertex core.Graph knows about.
//
// Complexity: O((V+E) log V) time, O(V+E) space, using a lazy-decrease-key
// binary heap (container/heap) exactly as a general-purpose Dijkstra would.
package dijkstra
