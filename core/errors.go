// SPDX-License-Identifier: MIT
package core

import "errors"

var (
	// ErrEmptyVertexID is returned when AddVertex is called with "".
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexExists is returned when AddVertex is called with an ID
	// already present in the graph.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound is returned when an operation references a vertex
	// ID that was never added via AddVertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)
