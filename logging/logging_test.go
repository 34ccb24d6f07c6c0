package logging_test

import (
	"bytes"
	"testing"

	"github.com/distgraph/diameter/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestForWorkerTagsWorkerID(t *testing.T) {
	var buf bytes.Buffer
	root := logging.New(&buf, zerolog.InfoLevel)
	worker := logging.ForWorker(root, 3)

	worker.Info().Msg("iteration complete")

	require.Contains(t, buf.String(), `"worker_id":3`)
	require.Contains(t, buf.String(), "iteration complete")
}

func TestDefaultVerboseRaisesLevel(t *testing.T) {
	quiet := logging.Default(false)
	verbose := logging.Default(true)
	require.Equal(t, zerolog.InfoLevel, quiet.GetLevel())
	require.Equal(t, zerolog.DebugLevel, verbose.GetLevel())
}
