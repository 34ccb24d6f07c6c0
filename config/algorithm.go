// SPDX-License-Identifier: MIT
// Package config parses and validates the CLI surface reproduced from
// original_source/diameter/src/main.rs's Config struct (§6): the
// algorithm grammar, dataset path, and distributed-run parameters.
package config

import (
	"regexp"
	"strconv"

	"github.com/distgraph/diameter/diamerr"
)

// AlgorithmKind names which of the four algorithm clients (plus the
// sequential baseline) a run selects.
type AlgorithmKind int

const (
	Sequential AlgorithmKind = iota
	DeltaStepping
	HyperBall
	RandCluster
	BFS
)

func (k AlgorithmKind) String() string {
	switch k {
	case Sequential:
		return "sequential"
	case DeltaStepping:
		return "delta-stepping"
	case HyperBall:
		return "hyperball"
	case RandCluster:
		return "rand-cluster"
	case BFS:
		return "bfs"
	default:
		return "unknown"
	}
}

// Algorithm is a parsed algorithm selection with its numeric parameter,
// when the kind takes one (delta-stepping(Δ), hyperball(p), rand-cluster(r)).
type Algorithm struct {
	Kind  AlgorithmKind
	Param uint64
}

var (
	reSequential  = regexp.MustCompile(`^sequential$`)
	reDeltaStep   = regexp.MustCompile(`^delta-stepping\((\d+)\)$`)
	reHyperBall   = regexp.MustCompile(`^hyperball\((\d+)\)$`)
	reRandCluster = regexp.MustCompile(`^rand-cluster\((\d+)\)$`)
	reBFS         = regexp.MustCompile(`^bfs$`)
)

// ParseAlgorithm parses the positional `algorithm` argument per §6's
// grammar: sequential, delta-stepping(Δ), hyperball(p) with 4 <= p <= 16,
// rand-cluster(r), bfs.
func ParseAlgorithm(arg string) (Algorithm, error) {
	if reSequential.MatchString(arg) {
		return Algorithm{Kind: Sequential}, nil
	}
	if reBFS.MatchString(arg) {
		return Algorithm{Kind: BFS}, nil
	}
	if m := reDeltaStep.FindStringSubmatch(arg); m != nil {
		v, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return Algorithm{}, diamerr.Config("config.ParseAlgorithm", err)
		}
		return Algorithm{Kind: DeltaStepping, Param: v}, nil
	}
	if m := reHyperBall.FindStringSubmatch(arg); m != nil {
		v, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return Algorithm{}, diamerr.Config("config.ParseAlgorithm", err)
		}
		if v < 4 || v > 16 {
			return Algorithm{}, diamerr.Config("config.ParseAlgorithm", ErrHyperBallPrecisionRange)
		}
		return Algorithm{Kind: HyperBall, Param: v}, nil
	}
	if m := reRandCluster.FindStringSubmatch(arg); m != nil {
		v, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return Algorithm{}, diamerr.Config("config.ParseAlgorithm", err)
		}
		return Algorithm{Kind: RandCluster, Param: v}, nil
	}
	return Algorithm{}, diamerr.Config("config.ParseAlgorithm", ErrUnknownAlgorithm)
}
