// SPDX-License-Identifier: MIT
// Package shard implements the compressed edge block set (C3): the on-disk
// to in-memory representation of one worker's shard of an undirected,
// weighted graph. A shard is an ordered list of blocks; each block is a
// sorted, deduplicated, gamma-coded difference stream of Z-order edge codes
// (zorder.EdgeCode), with an optional parallel stream of per-edge u32
// weights.
package shard

import (
	"fmt"

	"github.com/distgraph/diameter/bitio"
	"github.com/distgraph/diameter/diamerr"
	"github.com/distgraph/diameter/zorder"
)

// OwnershipPolicy selects how a BlockSet holds its blocks in memory once
// loaded (§4.3).
type OwnershipPolicy int

const (
	// Offline slurps every block fully into memory at Load time.
	Offline OwnershipPolicy = iota
	// OnDemand keeps only the raw bytes and re-decodes the difference
	// stream on every ForEach call, trading CPU for peak memory.
	OnDemand
)

// DefaultWeight is substituted for every edge when a block carries no
// weights stream (§4.3: "w = 1 when no weights file is present").
const DefaultWeight uint32 = 1

// EdgeFunc is invoked once per edge during ForEach; u <= v always holds.
type EdgeFunc func(u, v uint32, w uint32) error

// block holds one block's decoded or raw state depending on policy.
type block struct {
	policy  OwnershipPolicy
	edgeRaw []byte // difference-stream bytes (owned) — kept always
	wgtRaw  []byte // optional raw weights bytes (4 bytes per edge, BE)
	hasWgt  bool

	// populated only for Offline blocks, at Load time.
	codes   []uint64
	weights []uint32
}

// decode runs the difference-stream + weights decode once, returning the
// absolute Z-order codes and the parallel weight slice (nil weights means
// "use DefaultWeight" throughout).
func decodeBlock(edgeRaw, wgtRaw []byte, hasWgt bool) ([]uint64, []uint32, error) {
	r := bitio.NewReader(edgeRaw)
	dr := bitio.NewDiffReader(r)

	var codes []uint64
	for {
		v, ok, err := dr.Next()
		if err != nil {
			return nil, nil, fmt.Errorf("shard: decode difference stream: %w", err)
		}
		if !ok {
			break
		}
		if len(codes) > 0 && v <= codes[len(codes)-1] {
			return nil, nil, fmt.Errorf("shard: non-monotonic code %d after %d", v, codes[len(codes)-1])
		}
		codes = append(codes, v)
	}

	var weights []uint32
	if hasWgt {
		if len(wgtRaw)%4 != 0 {
			return nil, nil, fmt.Errorf("shard: weights stream length %d not a multiple of 4", len(wgtRaw))
		}
		n := len(wgtRaw) / 4
		if n != len(codes) {
			return nil, nil, fmt.Errorf("shard: weights count %d != edge count %d", n, len(codes))
		}
		weights = make([]uint32, n)
		for i := 0; i < n; i++ {
			weights[i] = be32(wgtRaw[i*4 : i*4+4])
		}
	}
	return codes, weights, nil
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func putBE32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// forEach visits every edge of the block in stored order, decoding on
// demand if the policy requires it.
func (b *block) forEach(fn EdgeFunc) error {
	codes, weights := b.codes, b.weights
	if b.policy == OnDemand {
		var err error
		codes, weights, err = decodeBlock(b.edgeRaw, b.wgtRaw, b.hasWgt)
		if err != nil {
			return diamerr.Format("shard.ForEach", err)
		}
	}
	for i, code := range codes {
		u, v := zorder.DecodeEdge(code)
		w := DefaultWeight
		if weights != nil {
			w = weights[i]
		}
		if err := fn(u, v, w); err != nil {
			return err
		}
	}
	return nil
}

// maxNode returns one plus the maximum node id touched by this block, or 0
// if the block is empty.
func (b *block) maxNode() (uint32, error) {
	codes, _ := b.codes, b.weights
	if b.policy == OnDemand || codes == nil {
		var err error
		codes, _, err = decodeBlock(b.edgeRaw, b.wgtRaw, b.hasWgt)
		if err != nil {
			return 0, err
		}
	}
	var max uint32
	for _, code := range codes {
		_, v := zorder.DecodeEdge(code)
		if v+1 > max {
			max = v + 1
		}
	}
	return max, nil
}
