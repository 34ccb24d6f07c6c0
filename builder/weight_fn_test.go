// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/distgraph/diameter/builder"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeightFn(t *testing.T) {
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rand.New(rand.NewSource(1))))
}
