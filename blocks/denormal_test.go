package blocks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlushDenormalLeavesNormalValuesUnchanged(t *testing.T) {
	require.Equal(t, 1.0, flushDenormal64(1.0))
	require.Equal(t, -0.5, flushDenormal64(-0.5))
	require.Equal(t, 1e-10, flushDenormal64(1e-10))
}

func TestFlushDenormalZeroesSubnormals(t *testing.T) {
	require.Equal(t, 0.0, flushDenormal64(1e-16))
	require.Equal(t, 0.0, flushDenormal64(-1e-16))
	require.Equal(t, 0.0, flushDenormal64(1e-300))
}

func TestFlushDenormal32(t *testing.T) {
	require.Equal(t, float32(1.0), flushDenormal32(1.0))
	require.Equal(t, float32(0.0), flushDenormal32(1e-16))
}
