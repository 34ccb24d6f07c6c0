// SPDX-License-Identifier: MIT
// Package stats carries the per-iteration counters threaded through vflow's
// Send and BranchAll operators. It is grounded in original_source/logging.rs
// (messages_sent, bytes_exchanged, active_nodes) — SPEC_FULL.md keeps the
// counters themselves in scope as return values even though the CSV writer
// they originally fed is not implemented here.
package stats

// IterationStats accumulates counters for a single call to vflow.Send or
// vflow.BranchAll. Callers that want per-algorithm totals across an entire
// run should Add successive IterationStats together.
type IterationStats struct {
	MessagesSent   int64
	BytesExchanged int64
	ActiveNodes    int64
}

// Add accumulates other into s and returns s for chaining.
func (s *IterationStats) Add(other IterationStats) *IterationStats {
	s.MessagesSent += other.MessagesSent
	s.BytesExchanged += other.BytesExchanged
	s.ActiveNodes += other.ActiveNodes
	return s
}
