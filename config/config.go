// SPDX-License-Identifier: MIT
package config

import (
	"strings"

	"github.com/distgraph/diameter/diamerr"
)

// RunConfig is the fully parsed and validated configuration for one run,
// mirroring original_source/diameter/src/main.rs's Config struct.
type RunConfig struct {
	Algorithm Algorithm
	Dataset   string
	Threads   int
	Seed      uint64
	Hosts     []string
	ProcessID int
	HasProcID bool
	DataDir   string
}

// Validate checks the cross-field invariants §6 imposes beyond what
// per-flag parsing already enforces.
func (c RunConfig) Validate() error {
	if c.Dataset == "" {
		return diamerr.Config("config.Validate", ErrMissingDataset)
	}
	if c.DataDir == "" {
		return diamerr.Config("config.Validate", ErrMissingDataDir)
	}
	if len(c.Hosts) > 0 && !c.HasProcID {
		return diamerr.Config("config.Validate", ErrMissingProcessID)
	}
	return nil
}

// ParseHosts splits a comma-separated host:port list, matching
// original_source's parse_hosts (the file-based form is not reproduced:
// SSH-driven multi-host spawn is out of scope per spec.md §1).
func ParseHosts(arg string) []string {
	if arg == "" {
		return nil
	}
	parts := strings.Split(arg, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
