// SPDX-License-Identifier: MIT
package shard

import (
	"fmt"
	"sort"

	"github.com/distgraph/diameter/bitio"
	"github.com/distgraph/diameter/zorder"
)

// Edge is a plain (u, v, weight) triple used when building block bytes in
// memory, e.g. from a core.Graph via builder.ToShard.
type Edge struct {
	U, V uint32
	W    uint32
}

// EncodeBlock sorts edges by their Z-order code, deduplicates equal codes,
// and returns the gamma-coded difference-stream bytes for part-{k}.bin and,
// only when writeWeights is true, the matching weights-{k}.bin bytes.
//
// When writeWeights is false, weightBytes is nil and every edge's weight is
// dropped, including weights that differ from DefaultWeight.
func EncodeBlock(edges []Edge, writeWeights bool) (edgeBytes, weightBytes []byte, err error) {
	type coded struct {
		code uint64
		w    uint32
	}
	coded1 := make([]coded, len(edges))
	for i, e := range edges {
		coded1[i] = coded{code: zorder.EdgeCode(e.U, e.V), w: e.W}
	}
	sort.Slice(coded1, func(i, j int) bool { return coded1[i].code < coded1[j].code })

	// deduplicate consecutive equal codes, keeping the first occurrence's
	// weight (mirrors the shard format's "sorted, deduplicated" invariant).
	deduped := coded1[:0]
	for i, c := range coded1 {
		if i > 0 && c.code == deduped[len(deduped)-1].code {
			continue
		}
		deduped = append(deduped, c)
	}

	w := bitio.NewWriter()
	dw := bitio.NewDiffWriter(w)
	for _, c := range deduped {
		if err := dw.Write(c.code); err != nil {
			return nil, nil, fmt.Errorf("shard.EncodeBlock: %w", err)
		}
	}
	if err := dw.Close(); err != nil {
		return nil, nil, fmt.Errorf("shard.EncodeBlock: %w", err)
	}
	edgeBytes = w.Bytes()

	if writeWeights {
		weightBytes = make([]byte, 4*len(deduped))
		for i, c := range deduped {
			putBE32(weightBytes[i*4:i*4+4], c.w)
		}
	}
	return edgeBytes, weightBytes, nil
}

// LoadFromMemory builds a BlockSet directly from in-memory edge lists,
// bypassing the filesystem — used by tests and by callers that already hold
// a graph in memory (builder.ToShard).
func LoadFromMemory(blocks [][]Edge, writeWeights bool, policy OwnershipPolicy) (*BlockSet, error) {
	bs := &BlockSet{}
	for i, edges := range blocks {
		edgeRaw, wgtRaw, err := EncodeBlock(edges, writeWeights)
		if err != nil {
			return nil, fmt.Errorf("shard.LoadFromMemory: block %d: %w", i, err)
		}
		b := &block{policy: policy, edgeRaw: edgeRaw, wgtRaw: wgtRaw, hasWgt: writeWeights}
		if policy == Offline {
			codes, weights, err := decodeBlock(edgeRaw, wgtRaw, writeWeights)
			if err != nil {
				return nil, fmt.Errorf("shard.LoadFromMemory: block %d: %w", i, err)
			}
			b.codes, b.weights = codes, weights
		}
		maxN, err := b.maxNode()
		if err != nil {
			return nil, err
		}
		if maxN > bs.totalNodes {
			bs.totalNodes = maxN
		}
		bs.byteSize += int64(len(edgeRaw) + len(wgtRaw))
		bs.blocks = append(bs.blocks, b)
	}
	return bs, nil
}
