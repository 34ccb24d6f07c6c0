// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfigDefaults(t *testing.T) {
	cfg := newBuilderConfig()
	require.Equal(t, "7", cfg.idFn(7))
	require.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	require.Nil(t, cfg.rng)
}

func TestWithIDSchemeOverridesAndIgnoresNil(t *testing.T) {
	custom := func(idx int) string { return "v" + DefaultIDFn(idx) }
	cfg := newBuilderConfig(WithIDScheme(custom))
	require.Equal(t, "v3", cfg.idFn(3))

	cfgNil := newBuilderConfig(WithIDScheme(nil))
	require.Equal(t, "3", cfgNil.idFn(3))
}

func TestWithWeightFnOverridesAndIgnoresNil(t *testing.T) {
	custom := func(_ *rand.Rand) float64 { return 9 }
	cfg := newBuilderConfig(WithWeightFn(custom))
	require.Equal(t, 9.0, cfg.weightFn(nil))

	cfgNil := newBuilderConfig(WithWeightFn(nil))
	require.Equal(t, DefaultEdgeWeight, cfgNil.weightFn(nil))
}

func TestWithSeedIsReproducible(t *testing.T) {
	cfg1 := newBuilderConfig(WithSeed(42))
	a1, b1 := cfg1.rng.Int63(), cfg1.rng.Int63()

	cfg2 := newBuilderConfig(WithSeed(42))
	a2, b2 := cfg2.rng.Int63(), cfg2.rng.Int63()

	require.Equal(t, a1, a2)
	require.Equal(t, b1, b2)
}
