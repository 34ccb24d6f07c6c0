// Package graph (diameter) is a distributed, vertex-centric dataflow engine
// for estimating the diameter of large graphs that don't fit on one machine.
//
// What is distgraph/diameter?
//
//	A set of workers, each owning a disjoint shard of a graph's edges, that
//	cooperate through a small timely-dataflow-style scheduler to run one of
//	four diameter estimators:
//
//	  • bfsdiam    — eccentricity of one root via a single BFS
//	  • deltastep  — Δ-stepping single-source shortest paths
//	  • hyperball  — HyperLogLog neighborhood-function estimation
//	  • randcluster — random-ball clustering + graph contraction, finished
//	    by a sequential Dijkstra pass on the small auxiliary graph
//
// Why this shape?
//
//   - Edges are partitioned across workers by a deterministic ownership
//     function; the workers are logical partitions inside one process.
//   - Iteration state moves between workers through a vertex-centric
//     send/receive operator (vflow), which simulates the message exchange
//     in-process rather than sending it over the network.
//   - Pure Go, structured logging, typed error taxonomy — no magic.
//
// Under the hood, the repository is organized as:
//
//	zorder/      — Morton/Z-order bit-interleaving codec
//	bitio/       — gamma/delta universal bitstream codec
//	shard/       — compressed, block-partitioned edge store
//	registry/    — node→worker ownership registry
//	vflow/       — vertex-centric send + branch_all convergence operators
//	hyperloglog/ — HyperLogLog sketch used by hyperball
//	bfsdiam/, deltastep/, hyperball/, randcluster/ — the four algorithms
//	core/        — in-memory graph type, used by the builder fixtures, the
//	               sequential sweep, and the small auxiliary graph produced
//	               by random-ball contraction
//	dijkstra/    — sequential shortest-path solver for that auxiliary graph
//	auxsolve/    — adapts dijkstra's output into the diameter result shape
//	builder/     — deterministic fixture topologies (Path, Star, Grid) for tests
//	transport/   — gob-framed worker-to-worker networking
//	config/      — parsed CLI configuration and its validation errors
//	logging/     — per-worker structured loggers
//	diamerr/     — typed error taxonomy (config, I/O, format, invariant, remote)
//	cmd/diameter/ — the CLI entrypoint
//
// See SPEC_FULL.md and the per-package docs for the wire formats, iteration
// model, and algorithm-specific invariants.
package graph
