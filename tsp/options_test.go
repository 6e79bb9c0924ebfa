package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/tsp"
)

// TestOptions_Limit resolves the zero MaxPoints to the default ceiling.
func TestOptions_Limit(t *testing.T) {
	require.Equal(t, tsp.DefaultMaxPoints, tsp.Options{}.Limit())
	require.Equal(t, tsp.DefaultMaxPoints, tsp.DefaultOptions().Limit())
	require.Equal(t, 7, tsp.Options{MaxPoints: 7}.Limit())
}

// TestOptions_Validate covers the size-independent checks.
func TestOptions_Validate(t *testing.T) {
	require.NoError(t, tsp.Options{}.Validate())
	require.ErrorIs(t, tsp.Options{MaxPoints: tsp.HardMaxPoints + 1}.Validate(), tsp.ErrInvalidOptions)
	require.ErrorIs(t, tsp.Options{MaxPoints: -1}.Validate(), tsp.ErrInvalidOptions)
	require.ErrorIs(t, tsp.Options{FixedStart: true, Start: -2}.Validate(), tsp.ErrInvalidOptions)
	require.ErrorIs(t, tsp.Options{Mode: tsp.Mode(9)}.Validate(), tsp.ErrInvalidOptions)
}
