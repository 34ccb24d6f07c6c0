// SPDX-License-Identifier: MIT
package shard

import (
	"fmt"
	"os"

	"github.com/distgraph/diameter/diamerr"
)

// BlockPath names one block's files on disk: the required edges file
// (part-{k}.bin) and an optional weights file (weights-{k}.bin).
type BlockPath struct {
	EdgesPath   string
	WeightsPath string // empty means "no weights file"
}

// BlockSet is the decoded/streamable representation of one worker's shard
// (§4.3). It is immutable and safe to share via a read-only reference once
// constructed; ForEach may be called repeatedly and concurrently by
// distinct goroutines as long as each holds its own call (no shared
// mutable iterator state).
type BlockSet struct {
	blocks     []*block
	totalNodes uint32
	byteSize   int64
}

// Load opens every block listed in paths under the given ownership policy.
// Offline decodes and retains every block's edges eagerly; OnDemand retains
// only the raw bytes and decodes lazily on each ForEach call. Truncated
// blocks, non-monotonic codes, and weights/edges length mismatches are all
// fatal at load time (§4.3) and surfaced as a FormatError; a missing file is
// an IOError.
func Load(paths []BlockPath, policy OwnershipPolicy) (*BlockSet, error) {
	bs := &BlockSet{}
	for i, p := range paths {
		edgeRaw, err := os.ReadFile(p.EdgesPath)
		if err != nil {
			return nil, diamerr.IO("shard.Load", fmt.Errorf("block %d (%s): %w", i, p.EdgesPath, err))
		}
		var wgtRaw []byte
		hasWgt := p.WeightsPath != ""
		if hasWgt {
			wgtRaw, err = os.ReadFile(p.WeightsPath)
			if err != nil {
				return nil, diamerr.IO("shard.Load", fmt.Errorf("block %d weights (%s): %w", i, p.WeightsPath, err))
			}
		}

		b := &block{policy: policy, edgeRaw: edgeRaw, wgtRaw: wgtRaw, hasWgt: hasWgt}
		if policy == Offline {
			codes, weights, err := decodeBlock(edgeRaw, wgtRaw, hasWgt)
			if err != nil {
				return nil, diamerr.Format("shard.Load", fmt.Errorf("block %d: %w", i, err))
			}
			b.codes, b.weights = codes, weights
		}

		maxN, err := b.maxNode()
		if err != nil {
			return nil, diamerr.Format("shard.Load", fmt.Errorf("block %d: %w", i, err))
		}
		if maxN > bs.totalNodes {
			bs.totalNodes = maxN
		}
		bs.byteSize += int64(len(edgeRaw) + len(wgtRaw))
		bs.blocks = append(bs.blocks, b)
	}
	return bs, nil
}

// ForEach iterates every edge in every block exactly once, in block-file
// order, invoking fn(u, v, w) with u <= v. A non-nil error from fn aborts
// iteration and is returned unwrapped.
func (bs *BlockSet) ForEach(fn EdgeFunc) error {
	for _, b := range bs.blocks {
		if err := b.forEach(fn); err != nil {
			return err
		}
	}
	return nil
}

// TotalNodes returns one plus the maximum node id observed across every
// block at load time.
func (bs *BlockSet) TotalNodes() uint32 { return bs.totalNodes }

// ByteSize reports the total bytes read from disk across all blocks
// (diagnostics only).
func (bs *BlockSet) ByteSize() int64 { return bs.byteSize }

// NumBlocks reports how many blocks make up this set.
func (bs *BlockSet) NumBlocks() int { return len(bs.blocks) }

// AssignBlock returns the index of the worker that loads block k among
// numWorkers workers, i.e. k mod numWorkers, matching §3's "k selects which
// worker loads which block (round-robin modulo peer count)".
func AssignBlock(k, numWorkers int) int {
	if numWorkers <= 0 {
		return 0
	}
	return k % numWorkers
}
