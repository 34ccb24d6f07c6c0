// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/distgraph/diameter/builder"
	"github.com/stretchr/testify/require"
)

func TestDefaultIDFn(t *testing.T) {
	require.Equal(t, "0", builder.DefaultIDFn(0))
	require.Equal(t, "123", builder.DefaultIDFn(123))
}
