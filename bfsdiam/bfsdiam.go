// SPDX-License-Identifier: MIT
// Package bfsdiam implements BFS eccentricity (C7, §4.7): an unweighted
// diameter lower bound obtained by breadth-first search from one root
// chosen by a seeded RNG on worker 0.
package bfsdiam

import (
	"errors"
	"math/rand"

	"github.com/distgraph/diameter/diamerr"
	"github.com/distgraph/diameter/vflow"
)

// ErrNoNodeReached indicates the graph had no nodes reachable from root,
// including root itself never appearing in any worker's state partition —
// a bug, not a user error.
var ErrNoNodeReached = errors.New("bfsdiam: no node ever reached a distance")

// NoDistance marks "distance not yet known" (§3's Option<u32> None).
const NoDistance int64 = -1

// State is the per-node BFS state: the shortest known distance from the
// root (NoDistance until reached) and whether the node is active this
// round (newly reached, must broadcast once more, then deactivate).
type State struct {
	Distance int64
	Active   bool
}

// PickRoot chooses a root node uniformly from [0, numNodes) using a seeded
// RNG, matching §4.7's "One root is chosen on worker 0 via a seeded RNG".
func PickRoot(seed int64, numNodes uint32) uint32 {
	if numNodes == 0 {
		return 0
	}
	rng := rand.New(rand.NewSource(seed))
	return uint32(rng.Int63n(int64(numNodes)))
}

func callbacks() vflow.Callbacks[State, int64] {
	return vflow.Callbacks[State, int64]{
		WithDefault: true,
		Default:     func() State { return State{Distance: NoDistance, Active: false} },
		ShouldSend:  func(_ vflow.Timestamp, s State) bool { return s.Active },
		Message: func(_ vflow.Timestamp, s State, _ uint32) (int64, bool) {
			return s.Distance + 1, true
		},
		Aggregate: func(a, b int64) int64 {
			if a < b {
				return a
			}
			return b
		},
		Update: func(s State, candidate int64) State {
			if s.Distance == NoDistance || candidate < s.Distance {
				return State{Distance: candidate, Active: true}
			}
			return State{Distance: s.Distance, Active: false}
		},
		UpdateNoMsg: func(s State) State {
			return State{Distance: s.Distance, Active: false}
		},
	}
}

// Run executes BFS eccentricity from root over cluster and returns the
// eccentricity (max distance reached by any node). maxIterations bounds the
// loop defensively; a disconnected or empty graph simply converges early.
func Run(cluster *vflow.Cluster, root uint32, maxIterations int) (int64, error) {
	n := cluster.NumWorkers()
	in := vflow.NewStates[State](n)
	owner := vflow.StateOwner(root, n)
	in[owner][root] = State{Distance: 0, Active: true}

	cb := callbacks()
	t := vflow.NewTimestamp(0, 0)
	for iter := 0; iter < maxIterations; iter++ {
		stable, _ := vflow.BranchAll(in, func(s State) bool { return s.Active })
		if stable {
			break
		}
		out, _, err := vflow.Send(cluster, t, in, cb)
		if err != nil {
			return 0, diamerr.Invariant("bfsdiam.Run", err)
		}
		in = out
		t = t.Next()
	}

	var ecc int64 = NoDistance
	for _, partition := range in {
		for _, s := range partition {
			if s.Distance > ecc {
				ecc = s.Distance
			}
		}
	}
	if ecc == NoDistance {
		return 0, diamerr.Invariant("bfsdiam.Run", ErrNoNodeReached)
	}
	return ecc, nil
}
