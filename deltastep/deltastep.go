// SPDX-License-Identifier: MIT
// Package deltastep implements Δ-stepping weighted SSSP (C8, §4.8): a
// nested loop with an outer bucket index k and an inner fixed-point over
// light-edge relaxations within the bucket, followed by a single heavy-edge
// relaxation once the inner loop stabilizes.
package deltastep

import (
	"github.com/distgraph/diameter/diamerr"
	"github.com/distgraph/diameter/vflow"
)

// NoDistance marks "distance not yet known".
const NoDistance int64 = -1

// State is the per-node Δ-stepping state: the best known distance from the
// root, and whether it changed during the current inner iteration.
type State struct {
	Distance int64
	Updated  bool
}

func minAggregate(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func updateOnImprove(s State, candidate int64) State {
	if s.Distance == NoDistance || candidate < s.Distance {
		return State{Distance: candidate, Updated: true}
	}
	return State{Distance: s.Distance, Updated: false}
}

func noMsg(s State) State { return State{Distance: s.Distance, Updated: false} }

// lightCallbacks relaxes only edges with weight <= delta, and only sends
// from nodes whose current distance still falls within bucket k
// (distance <= delta*(k+1)).
func lightCallbacks(delta int64, k int64) vflow.Callbacks[State, int64] {
	bound := delta * (k + 1)
	return vflow.Callbacks[State, int64]{
		WithDefault: true,
		Default:     func() State { return State{Distance: NoDistance, Updated: false} },
		ShouldSend: func(_ vflow.Timestamp, s State) bool {
			return s.Updated && s.Distance != NoDistance && s.Distance <= bound
		},
		Message: func(_ vflow.Timestamp, s State, w uint32) (int64, bool) {
			if int64(w) > delta {
				return 0, false
			}
			return s.Distance + int64(w), true
		},
		Aggregate:   minAggregate,
		Update:      updateOnImprove,
		UpdateNoMsg: noMsg,
	}
}

// heavyCallbacks fires once per bucket for nodes that just settled into
// bucket k (distance in (delta*k, delta*(k+1)], or [0, delta] for bucket 0
// so that the root itself is included), relaxing only edges with
// weight > delta.
func heavyCallbacks(delta int64, k int64) vflow.Callbacks[State, int64] {
	lo, hi := delta*k, delta*(k+1)
	if k == 0 {
		lo = -1 // bucket 0 also holds the root at distance 0
	}
	return vflow.Callbacks[State, int64]{
		WithDefault: true,
		Default:     func() State { return State{Distance: NoDistance, Updated: false} },
		ShouldSend: func(_ vflow.Timestamp, s State) bool {
			return s.Distance != NoDistance && s.Distance > lo && s.Distance <= hi
		},
		Message: func(_ vflow.Timestamp, s State, w uint32) (int64, bool) {
			if int64(w) <= delta {
				return 0, false
			}
			return s.Distance + int64(w), true
		},
		Aggregate:   minAggregate,
		Update:      updateOnImprove,
		UpdateNoMsg: noMsg,
	}
}

// Run executes Δ-stepping SSSP from root with bucket width delta (delta
// must be >= 1) and returns the eccentricity (max finite distance) from
// root. maxOuterIterations/maxInnerIterations bound the nested loops
// defensively.
func Run(cluster *vflow.Cluster, root uint32, delta int64, maxOuterIterations, maxInnerIterations int) (int64, error) {
	if delta < 1 {
		return 0, diamerr.Config("deltastep.Run", ErrDeltaRange)
	}
	n := cluster.NumWorkers()
	in := vflow.NewStates[State](n)
	owner := vflow.StateOwner(root, n)
	in[owner][root] = State{Distance: 0, Updated: true}

	t := vflow.NewTimestamp(0, 0, 0)
	for k := int64(0); int(k) < maxOuterIterations; k++ {
		// re-arm every node whose distance falls in bucket k: a node reached
		// while it lay beyond an earlier bucket's bound lost its Updated flag
		// without relaxing its light edges.
		for _, partition := range in {
			for node, s := range partition {
				if s.Distance != NoDistance && s.Distance > delta*k && s.Distance <= delta*(k+1) {
					partition[node] = State{Distance: s.Distance, Updated: true}
				}
			}
		}

		// inner fixed-point: light-edge relaxations within bucket k.
		for iter := 0; iter < maxInnerIterations; iter++ {
			stable, _ := vflow.BranchAll(in, func(s State) bool { return s.Updated })
			if stable {
				break
			}
			out, _, err := vflow.Send(cluster, t, in, lightCallbacks(delta, k))
			if err != nil {
				return 0, diamerr.Invariant("deltastep.Run", err)
			}
			in = out
			t = t.Next()
		}

		// single heavy-edge relaxation for this bucket.
		out, _, err := vflow.Send(cluster, t, in, heavyCallbacks(delta, k))
		if err != nil {
			return 0, diamerr.Invariant("deltastep.Run", err)
		}
		in = out
		t = t.Next()

		if !anyNodeBeyond(in, delta*(k+1)) {
			break
		}
	}

	var ecc int64 = NoDistance
	for _, partition := range in {
		for _, s := range partition {
			if s.Distance != NoDistance && s.Distance > ecc {
				ecc = s.Distance
			}
		}
	}
	if ecc == NoDistance {
		return 0, diamerr.Invariant("deltastep.Run", ErrEmptyResult)
	}
	return ecc, nil
}

func anyNodeBeyond(in []vflow.States[State], bound int64) bool {
	for _, partition := range in {
		for _, s := range partition {
			if s.Distance != NoDistance && s.Distance > bound {
				return true
			}
		}
	}
	return false
}
