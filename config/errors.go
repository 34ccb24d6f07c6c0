// SPDX-License-Identifier: MIT
package config

import "errors"

// ErrUnknownAlgorithm indicates the `algorithm` positional argument matched
// none of the §6 grammar's alternatives.
var ErrUnknownAlgorithm = errors.New("config: unrecognized algorithm")

// ErrHyperBallPrecisionRange indicates hyperball(p) was given p outside
// [4, 16].
var ErrHyperBallPrecisionRange = errors.New("config: hyperball precision must be between 4 and 16")

// ErrMissingProcessID indicates --hosts was given without --process-id.
// Multi-host spawn (re-launching the binary over ssh/rsync per host, as
// original_source/diameter/src/main.rs's Host::rsync does) is out of
// scope: a run with --hosts must already be one process per host, each
// told its own process id.
var ErrMissingProcessID = errors.New("config: --hosts requires --process-id; multi-host spawn is not implemented")

// ErrMissingDataDir indicates --ddir was not supplied.
var ErrMissingDataDir = errors.New("config: --ddir is required")

// ErrMissingDataset indicates the positional `dataset` argument was empty.
var ErrMissingDataset = errors.New("config: dataset argument is required")
