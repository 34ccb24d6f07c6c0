// Package builder provides reusable "functional-options"-style building blocks
// for constructing deterministic fixture graphs (Path, Star, Grid) on top of
// core.Graph, then adapting them into shard's on-disk edge format (ToShard)
// so every algorithm package's tests can drive a real distributed pipeline
// without a filesystem.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme (IDFn), weight function (WeightFn).
//   - Topology factories:
//     – Path(n), Star(n), Grid(rows, cols).
//   - ToShard: renumbers a fixture's string vertex IDs to dense uint32 node
//     ids and emits a shard.Edge list.
//
// Guarantees:
//
//   - Re-running a constructor on the same g is not idempotent: adding a vertex
//     that already exists fails with core.ErrVertexExists.
//   - No panics: option constructors do not validate, and topology constructors
//     report invalid sizes as errors wrapping ErrTooFewVertices.
//   - Runtime errors are built with fmt.Errorf and a "<Method>: " context
//     prefix, wrapping the sentinel with %w for errors.Is.
//   - Documented algorithmic complexity (O(n), O(rows*cols), etc.) per constructor.
//
// See individual function documentation for detailed contracts, error conditions,
// parameter descriptions, and performance notes.
package builder
