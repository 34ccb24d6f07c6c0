// SPDX-License-Identifier: MIT
// Package logging wires zerolog for the dataflow runtime, following the
// structured event style used elsewhere in the pack (field-by-field
// Int/Str/Msg chains rather than printf-style formatting). Every worker
// gets its own sub-logger tagged with worker_id, so concurrent-looking
// log output from an in-process simulation of several workers stays
// attributable.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the root logger, writing to w (typically os.Stderr) at level,
// with RFC3339 timestamps and no color (safe for redirection to a file).
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Default builds the root logger writing to os.Stderr at InfoLevel,
// raised to DebugLevel when verbose is true (the CLI's -v/--verbose flag).
func Default(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return New(os.Stderr, level)
}

// ForWorker derives a sub-logger tagged with worker_id, so every log line
// a given worker emits during a run can be filtered or grepped by id.
func ForWorker(root zerolog.Logger, workerID int) zerolog.Logger {
	return root.With().Int("worker_id", workerID).Logger()
}
