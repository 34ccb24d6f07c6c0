// SPDX-License-Identifier: MIT
package dijkstra

import "errors"

var (
	// ErrEmptySource indicates the source vertex ID is "".
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph was not built with
	// core.WithWeighted(), so its edge weights are meaningless.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates the source vertex does not exist in g.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was found during
	// the upfront scan; Dijkstra is undefined over negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)
