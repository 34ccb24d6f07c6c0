// SPDX-License-Identifier: MIT
// Package hyperball implements the HyperBall algorithm (C9, §4.9): every
// node carries a HyperLogLog counter representing the set of nodes
// reachable so far; each iteration, counters merge across edges, and a
// node's approximate eccentricity is the last iteration at which its
// counter still changed.
package hyperball

import (
	"github.com/distgraph/diameter/diamerr"
	"github.com/distgraph/diameter/hyperloglog"
	"github.com/distgraph/diameter/registry"
	"github.com/distgraph/diameter/vflow"
)

// State is the per-node HyperBall state.
type State struct {
	Counter        *hyperloglog.Counter
	Active         bool
	LastChangeIter int64
}

func callbacks(p uint8, iter int64) vflow.Callbacks[State, *hyperloglog.Counter] {
	return vflow.Callbacks[State, *hyperloglog.Counter]{
		WithDefault: true,
		Default: func() State {
			c, _ := hyperloglog.New(p) // p already validated by Run
			return State{Counter: c, Active: false, LastChangeIter: 0}
		},
		ShouldSend: func(_ vflow.Timestamp, s State) bool { return s.Active },
		Message: func(_ vflow.Timestamp, s State, _ uint32) (*hyperloglog.Counter, bool) {
			return s.Counter, true
		},
		Aggregate: hyperloglog.Merge,
		Update: func(s State, incoming *hyperloglog.Counter) State {
			merged := hyperloglog.Merge(s.Counter, incoming)
			if !hyperloglog.Equal(merged, s.Counter) {
				return State{Counter: merged, Active: true, LastChangeIter: iter}
			}
			return State{Counter: s.Counter, Active: false, LastChangeIter: s.LastChangeIter}
		},
		UpdateNoMsg: func(s State) State {
			return State{Counter: s.Counter, Active: false, LastChangeIter: s.LastChangeIter}
		},
	}
}

// Run executes HyperBall with HyperLogLog precision p over cluster,
// initializing every node known to reg with its own singleton counter, and
// returns the estimated diameter (max over all per-node deactivation
// iterations). maxIterations bounds the loop defensively.
func Run(cluster *vflow.Cluster, reg *registry.Registry, p uint8, maxIterations int) (int64, error) {
	if p < hyperloglog.MinPrecision || p > hyperloglog.MaxPrecision {
		return 0, diamerr.Config("hyperball.Run", hyperloglog.ErrPrecisionRange)
	}
	n := cluster.NumWorkers()
	in := vflow.NewStates[State](n)
	for _, nodeID := range reg.Nodes() {
		c, err := hyperloglog.NewFromNodeID(p, nodeID)
		if err != nil {
			return 0, diamerr.Invariant("hyperball.Run", err)
		}
		owner := vflow.StateOwner(nodeID, n)
		in[owner][nodeID] = State{Counter: c, Active: true, LastChangeIter: 0}
	}

	t := vflow.NewTimestamp(0, 0)
	for iter := int64(1); int(iter) <= maxIterations; iter++ {
		stable, _ := vflow.BranchAll(in, func(s State) bool { return s.Active })
		if stable {
			break
		}
		out, _, err := vflow.Send(cluster, t, in, callbacks(p, iter))
		if err != nil {
			return 0, diamerr.Invariant("hyperball.Run", err)
		}
		in = out
		t = t.Next()
	}

	var ecc int64
	for _, partition := range in {
		for _, s := range partition {
			if s.LastChangeIter > ecc {
				ecc = s.LastChangeIter
			}
		}
	}
	return ecc, nil
}
