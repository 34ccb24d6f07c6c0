// SPDX-License-Identifier: MIT
package vflow

// Callbacks bundles the five functions that define one algorithm's
// behavior under Send (§4.5, §9): ShouldSend, Message, Aggregate, Update,
// and UpdateNoMsg, plus the WithDefault/Default pair that controls whether
// unseen destination nodes are materialized.
//
// S is the per-node state type; M is the message type exchanged along
// edges. Both are algorithm-specific plain value types.
type Callbacks[S any, M any] struct {
	// WithDefault controls whether a node that receives a message but has
	// no existing state is materialized via Default and Update.
	WithDefault bool
	// Default constructs the state for a node with WithDefault set that
	// has never been seen before.
	Default func() S

	// ShouldSend reports whether state s should fan out a message at
	// timestamp t. A false result contributes no outgoing messages for t,
	// but the node can still receive and be updated.
	ShouldSend func(t Timestamp, s S) bool

	// Message computes the message to send along one incident edge of
	// weight edgeWeight, or ok=false to send nothing along that edge.
	Message func(t Timestamp, s S, edgeWeight uint32) (m M, ok bool)

	// Aggregate combines two messages destined for the same node. MUST be
	// commutative and associative (§4.5 invariants, §8.6).
	Aggregate func(a, b M) M

	// Update folds an aggregated message into a node's existing (or
	// default) state.
	Update func(s S, m M) S

	// UpdateNoMsg folds the absence of any message into a node's existing
	// state (called once per node per timestamp when no message arrived).
	UpdateNoMsg func(s S) S
}
