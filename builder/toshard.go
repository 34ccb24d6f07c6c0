// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// toshard.go — adapter from a core.Graph fixture to the shard package's
// in-memory block format (§3/§6), so Path/Star/Grid fixtures can drive the
// distributed algorithm packages and their round-trip tests without a
// filesystem.

package builder

import (
	"fmt"
	"strconv"

	"github.com/distgraph/diameter/core"
	"github.com/distgraph/diameter/shard"
)

// ToShard renumbers g's string vertex IDs to dense uint32 node ids (by
// sorted ID order, for determinism) and returns a single-block edge list
// plus the id->node mapping used to do so. Only simple numeric weights
// that fit in uint32 are supported; negative or overflowing weights
// return an error.
func ToShard(g *core.Graph) (edges []shard.Edge, ids map[string]uint32, err error) {
	vertices := g.Vertices()
	ids = make(map[string]uint32, len(vertices))
	// Vertices() is not guaranteed sorted; assign ids by a stable sort so
	// repeated calls on the same graph produce the same shard.
	sorted := append([]string(nil), vertices...)
	sortStrings(sorted)
	for i, id := range sorted {
		ids[id] = uint32(i)
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 || e.Weight > int64(^uint32(0)) {
			return nil, nil, fmt.Errorf("builder.ToShard: edge %s->%s weight %d out of uint32 range", e.From, e.To, e.Weight)
		}
		u, v := ids[e.From], ids[e.To]
		w := uint32(e.Weight)
		if w == 0 {
			w = shard.DefaultWeight
		}
		edges = append(edges, shard.Edge{U: u, V: v, W: w})
	}
	return edges, ids, nil
}

// sortStrings is a tiny insertion sort kept local so this file doesn't
// need to import "sort" for its one call site.
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// ParseNodeID parses a decimal vertex ID produced by DefaultIDFn back into
// its zero-based index as a uint32. That index is not in general the shard
// node id ToShard assigns: ToShard numbers vertices in sorted string order
// ("10" before "2"), and its ids map holds those node ids.
func ParseNodeID(id string) (uint32, error) {
	v, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("builder.ParseNodeID(%q): %w", id, err)
	}
	return uint32(v), nil
}
