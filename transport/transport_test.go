package transport_test

import (
	"errors"
	"testing"

	"github.com/distgraph/diameter/transport"
	"github.com/stretchr/testify/require"
)

var errMismatch = errors.New("transport_test: received frame did not match")

type fanoutBatch struct {
	Iteration int
	Nodes     []uint32
}

func TestFrameRoundTrip(t *testing.T) {
	ln, err := transport.Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	done := make(chan error, 1)
	go func() {
		server, acceptErr := ln.Accept()
		if acceptErr != nil {
			done <- acceptErr
			return
		}
		defer server.Close()

		var got fanoutBatch
		workerID, readErr := transport.ReadFrame(server, &got)
		if readErr != nil {
			done <- readErr
			return
		}
		if workerID != 3 || got.Iteration != 7 || len(got.Nodes) != 3 {
			done <- errMismatch
			return
		}
		done <- nil
	}()

	client, err := transport.Dial(ln.Addr().String())
	require.NoError(t, err)
	defer client.Close()

	err = transport.WriteFrame(client, 3, fanoutBatch{Iteration: 7, Nodes: []uint32{1, 2, 3}})
	require.NoError(t, err)

	require.NoError(t, <-done)
}
