// SPDX-License-Identifier: MIT
// Command diameter reproduces original_source/diameter/src/main.rs's CLI
// surface (§6): `diameter <algorithm> <dataset> [flags]`, where algorithm
// matches config.ParseAlgorithm's grammar and dataset names a directory of
// §3-format blocks (part-{k}.bin, optional weights-{k}.bin) under --ddir.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/distgraph/diameter/config"
	"github.com/distgraph/diameter/logging"
)

var (
	flagThreads   int
	flagSeed      uint64
	flagHosts     string
	flagProcessID int
	flagHasProcID bool
	flagDataDir   string
	flagVerbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "diameter <algorithm> <dataset>",
		Short: "Estimate the diameter of a large edge-weighted graph",
		Args:  cobra.ExactArgs(2),
		RunE:  runDiameter,
	}

	root.Flags().IntVar(&flagThreads, "threads", 1, "number of worker threads (logical workers) per process")
	root.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed for root/center selection")
	root.Flags().StringVar(&flagHosts, "hosts", "", "comma-separated host:port list (requires --process-id)")
	root.Flags().IntVar(&flagProcessID, "process-id", 0, "this process's index within --hosts (set automatically; don't set manually)")
	root.Flags().StringVar(&flagDataDir, "ddir", "", "directory containing the graph's block files")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")

	root.PreRun = func(cmd *cobra.Command, _ []string) {
		flagHasProcID = cmd.Flags().Changed("process-id")
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDiameter(cmd *cobra.Command, args []string) error {
	log := logging.Default(flagVerbose)

	alg, err := config.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}
	rc := config.RunConfig{
		Algorithm: alg,
		Dataset:   args[1],
		Threads:   flagThreads,
		Seed:      flagSeed,
		Hosts:     config.ParseHosts(flagHosts),
		ProcessID: flagProcessID,
		HasProcID: flagHasProcID,
		DataDir:   flagDataDir,
	}
	if err := rc.Validate(); err != nil {
		return err
	}

	log.Info().
		Str("algorithm", alg.Kind.String()).
		Uint64("param", alg.Param).
		Str("dataset", rc.Dataset).
		Int("threads", rc.Threads).
		Msg("starting run")

	result, err := Run(rc, log)
	if err != nil {
		return err
	}

	fmt.Printf("Diameter in [%d, %d]\n", result, 2*result)
	return nil
}
