package config_test

import (
	"testing"

	"github.com/distgraph/diameter/config"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithmGrammar(t *testing.T) {
	cases := []struct {
		arg  string
		want config.Algorithm
	}{
		{"sequential", config.Algorithm{Kind: config.Sequential}},
		{"bfs", config.Algorithm{Kind: config.BFS}},
		{"delta-stepping(5)", config.Algorithm{Kind: config.DeltaStepping, Param: 5}},
		{"hyperball(10)", config.Algorithm{Kind: config.HyperBall, Param: 10}},
		{"rand-cluster(2)", config.Algorithm{Kind: config.RandCluster, Param: 2}},
	}
	for _, tc := range cases {
		got, err := config.ParseAlgorithm(tc.arg)
		require.NoError(t, err, tc.arg)
		require.Equal(t, tc.want, got, tc.arg)
	}
}

func TestParseAlgorithmHyperBallRange(t *testing.T) {
	_, err := config.ParseAlgorithm("hyperball(3)")
	require.ErrorIs(t, err, config.ErrHyperBallPrecisionRange)

	_, err = config.ParseAlgorithm("hyperball(17)")
	require.ErrorIs(t, err, config.ErrHyperBallPrecisionRange)
}

func TestParseAlgorithmUnknown(t *testing.T) {
	_, err := config.ParseAlgorithm("quantum-annealing(1)")
	require.ErrorIs(t, err, config.ErrUnknownAlgorithm)
}

func TestHostsWithoutProcessID(t *testing.T) {
	rc := config.RunConfig{
		Dataset: "grid",
		DataDir: "/tmp/data",
		Hosts:   config.ParseHosts("h1:9000,h2:9000"),
	}
	err := rc.Validate()
	require.ErrorIs(t, err, config.ErrMissingProcessID)
}

func TestValidConfig(t *testing.T) {
	rc := config.RunConfig{
		Dataset:   "grid",
		DataDir:   "/tmp/data",
		Hosts:     config.ParseHosts("h1:9000"),
		ProcessID: 0,
		HasProcID: true,
	}
	require.NoError(t, rc.Validate())
}
