// SPDX-License-Identifier: MIT
package vflow

import "github.com/distgraph/diameter/stats"

// BranchAll implements C6: a global OR-reduction over every worker's
// current state partition. At a given timestamp, if predicate holds for at
// least one record on at least one worker, the whole round is considered
// "further" (recirculate via a feedback edge); otherwise it is "stable"
// (the iteration has reached its fixed point and the caller should emit the
// current states as final).
//
// This matches §4.6's description exactly: each worker counts matching
// records, the counts are summed globally, and every worker observes the
// same stable/further decision at notification time (§8.7) — here the
// "exchange" is simply a single-process reduction over every partition.
func BranchAll[S any](in []States[S], predicate func(S) bool) (stable bool, st stats.IterationStats) {
	var matched int64
	for _, partition := range in {
		for _, s := range partition {
			if predicate(s) {
				matched++
			}
		}
	}
	st.ActiveNodes = matched
	return matched == 0, st
}
