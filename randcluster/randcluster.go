// SPDX-License-Identifier: MIT
// Package randcluster implements random-ball clustering (C10, §4.10): a
// probabilistic Θ(log n)-iteration ball-growing algorithm that partitions a
// graph into clusters, contracts each cluster to its center, and hands the
// resulting small auxiliary graph to a sequential solver.
package randcluster

import (
	"math/rand"

	"github.com/distgraph/diameter/diamerr"
	"github.com/distgraph/diameter/registry"
	"github.com/distgraph/diameter/vflow"
)

// NoDistance marks "distance not yet known".
const NoDistance int64 = -1

// NoGeneration marks "not yet assigned a center".
const NoGeneration int64 = -1

// NoRoot marks "not yet covered by any center".
const NoRoot uint32 = ^uint32(0)

// State is the per-node random-ball state: the cluster center it has been
// assigned to (NoRoot until covered), the shortest-path distance to that
// center seen so far, the generation at which that center was sampled, and
// whether the node is active this inner-loop round.
type State struct {
	Root       uint32
	Distance   int64
	Generation int64
	Active     bool
}

func uncovered() State {
	return State{Root: NoRoot, Distance: NoDistance, Generation: NoGeneration, Active: false}
}

// Message carries a candidate (root, distance, generation) triple along one
// edge during ball expansion.
type Message struct {
	Root       uint32
	Distance   int64
	Generation int64
}

// mergeMessage implements the §4.10/§9 tie-break, preserved exactly as the
// spec documents it as deliberate (see the Open Question decision recorded
// in DESIGN.md): highest generation wins outright — even against a smaller
// distance — so a freshly sampled center can pull a node away from an
// older cluster; ties broken by smaller distance, then smaller root id.
func mergeMessage(a, b Message) Message {
	if a.Generation != b.Generation {
		if a.Generation > b.Generation {
			return a
		}
		return b
	}
	if a.Distance != b.Distance {
		if a.Distance < b.Distance {
			return a
		}
		return b
	}
	if a.Root <= b.Root {
		return a
	}
	return b
}

func ballCallbacks(r int64) vflow.Callbacks[State, Message] {
	return vflow.Callbacks[State, Message]{
		WithDefault: true,
		Default:     uncovered,
		ShouldSend: func(_ vflow.Timestamp, s State) bool {
			return s.Active && s.Root != NoRoot
		},
		Message: func(_ vflow.Timestamp, s State, w uint32) (Message, bool) {
			d := s.Distance + int64(w)
			if d > r {
				return Message{}, false
			}
			return Message{Root: s.Root, Distance: d, Generation: s.Generation}, true
		},
		Aggregate: mergeMessage,
		Update: func(s State, m Message) State {
			switch {
			case s.Root == NoRoot:
				return State{Root: m.Root, Distance: m.Distance, Generation: m.Generation, Active: true}
			case s.Root == m.Root && m.Distance < s.Distance:
				return State{Root: s.Root, Distance: m.Distance, Generation: s.Generation, Active: true}
			default:
				return State{Root: s.Root, Distance: s.Distance, Generation: s.Generation, Active: false}
			}
		},
		UpdateNoMsg: func(s State) State {
			return State{Root: s.Root, Distance: s.Distance, Generation: s.Generation, Active: false}
		},
	}
}

// becomesCenter deterministically decides, for a given seed/generation/node
// triple, whether an uncovered node samples itself as a new center with
// probability p. The decision must be reproducible independent of
// iteration order, so it is derived from a dedicated RNG stream per
// (seed, generation, node) rather than a single shared *rand.Rand.
func becomesCenter(seed int64, generation int64, node uint32, p float64) bool {
	if p >= 1 {
		return true
	}
	src := rand.NewSource(seed ^ (generation * 1_000_003) ^ int64(node)*2_654_435_761)
	return rand.New(src).Float64() < p
}

// Run executes random-ball clustering with target radius r over cluster,
// returning the final per-node State for every node known to reg. seed
// drives the deterministic center-sampling RNG. maxGenerations and
// maxInnerIterations bound the outer and inner loops defensively.
func Run(cluster *vflow.Cluster, reg *registry.Registry, r int64, seed int64, maxGenerations, maxInnerIterations int) ([]vflow.States[State], error) {
	if r < 0 {
		return nil, diamerr.Config("randcluster.Run", ErrRadiusRange)
	}
	n := cluster.NumWorkers()
	numNodes := int64(reg.NumNodes())
	in := vflow.NewStates[State](n)
	for _, node := range reg.Nodes() {
		owner := vflow.StateOwner(node, n)
		in[owner][node] = uncovered()
	}

	cb := ballCallbacks(r)
	t := vflow.NewTimestamp(0, 0, 0)

	for g := 0; g < maxGenerations; g++ {
		stableOuter, _ := vflow.BranchAll(in, func(s State) bool { return s.Root == NoRoot })
		if stableOuter {
			break
		}

		pg := 1.0
		if numNodes > 0 {
			scale := float64(int64(1) << uint(minInt(g, 62)))
			pg = scale / float64(numNodes)
			if pg > 1 {
				pg = 1
			}
		}

		for _, partition := range in {
			for node, s := range partition {
				if s.Root != NoRoot {
					continue
				}
				if becomesCenter(seed, int64(g), node, pg) {
					partition[node] = State{Root: node, Distance: 0, Generation: int64(g), Active: true}
				}
			}
		}

		for iter := 0; iter < maxInnerIterations; iter++ {
			stableInner, _ := vflow.BranchAll(in, func(s State) bool { return s.Active })
			if stableInner {
				break
			}
			out, _, err := vflow.Send(cluster, t, in, cb)
			if err != nil {
				return nil, diamerr.Invariant("randcluster.Run", err)
			}
			in = out
			t = t.Next()
		}
	}

	return in, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
