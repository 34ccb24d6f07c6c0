// Package shard is documented in block.go; see BlockSet, Load, and
// LoadFromMemory for the primary entry points.
package shard
