// SPDX-License-Identifier: MIT
// Package hyperloglog implements the HyperLogLog cardinality estimator
// counter used by the hyperball algorithm (C9, §4.9): a node's counter
// initially represents the singleton set {node}; as HyperBall iterates,
// counters merge along edges (elementwise max) to approximate the size of
// the set of nodes reachable within an increasing number of hops.
package hyperloglog

import (
	"encoding/binary"
	"errors"
	"math"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// ErrPrecisionRange is returned when p falls outside [MinPrecision,
// MaxPrecision] (§6's CLI grammar: "hyperball(p) with 4 <= p <= 16").
var ErrPrecisionRange = errors.New("hyperloglog: precision p out of range [4,16]")

// MinPrecision and MaxPrecision bound the register-count exponent p.
const (
	MinPrecision = 4
	MaxPrecision = 16
)

// Counter is a HyperLogLog sketch with 2^p registers, each a small run
// length (trailing-zero count + 1). The zero value is not usable; build
// with New or NewFromNodeID.
type Counter struct {
	p         uint8
	registers []uint8
}

// New returns an empty counter (every register 0, representing the empty
// set) with 2^p registers. Returns ErrPrecisionRange if p is out of bounds.
func New(p uint8) (*Counter, error) {
	if p < MinPrecision || p > MaxPrecision {
		return nil, ErrPrecisionRange
	}
	return &Counter{p: p, registers: make([]uint8, 1<<p)}, nil
}

// NewFromNodeID returns a counter representing the singleton set {nodeID}:
// it hashes the node id, uses the low p bits as the register index, and
// stores trailing_zeros(rest)+1 in that register (§4.9).
func NewFromNodeID(p uint8, nodeID uint32) (*Counter, error) {
	c, err := New(p)
	if err != nil {
		return nil, err
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], nodeID)
	h := xxhash.Sum64(buf[:])

	idx := h & ((1 << p) - 1)
	rest := h >> p
	run := uint8(bits.TrailingZeros64(rest)) + 1
	if rest == 0 {
		// all remaining bits are zero; TrailingZeros64(0) == 64 would count
		// bits beyond the 64-p that remain, so use the longest possible
		// run over those bits, 64-p+1.
		run = uint8(64 - int(p) + 1)
	}
	c.registers[idx] = run
	return c, nil
}

// Precision returns p.
func (c *Counter) Precision() uint8 { return c.p }

// Clone returns a deep copy.
func (c *Counter) Clone() *Counter {
	out := &Counter{p: c.p, registers: make([]uint8, len(c.registers))}
	copy(out.registers, c.registers)
	return out
}

// Merge returns the elementwise-max merge of a and b — commutative and
// associative, so it composes directly as a vflow Callbacks.Aggregate.
// Merge panics if a and b have different precisions, a programmer error.
func Merge(a, b *Counter) *Counter {
	if a.p != b.p {
		panic("hyperloglog: Merge requires equal precision")
	}
	out := a.Clone()
	for i, v := range b.registers {
		if v > out.registers[i] {
			out.registers[i] = v
		}
	}
	return out
}

// Equal reports whether two counters have identical register contents —
// used by hyperball to detect "counter unchanged" and deactivate a node.
func Equal(a, b *Counter) bool {
	if a.p != b.p {
		return false
	}
	for i, v := range a.registers {
		if b.registers[i] != v {
			return false
		}
	}
	return true
}

// Estimate returns the HyperLogLog cardinality estimate using the standard
// bias-corrected harmonic-mean formula.
func (c *Counter) Estimate() float64 {
	m := float64(len(c.registers))
	sum := 0.0
	zeros := 0
	for _, v := range c.registers {
		sum += math.Pow(2, -float64(v))
		if v == 0 {
			zeros++
		}
	}
	alpha := alphaFor(len(c.registers))
	raw := alpha * m * m / sum

	// small-range correction via linear counting when many registers are
	// still empty.
	if raw <= 2.5*m && zeros > 0 {
		return m * math.Log(m/float64(zeros))
	}
	return raw
}

func alphaFor(m int) float64 {
	switch m {
	case 16:
		return 0.673
	case 32:
		return 0.697
	case 64:
		return 0.709
	default:
		return 0.7213 / (1 + 1.079/float64(m))
	}
}
