package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"zikichombo.org/dspgraph"
	"zikichombo.org/dspgraph/blocks"
	"zikichombo.org/sound/freq"
)

func buildConstGraph(t *testing.T, blockSize int) (*dspgraph.Graph[float64], dspgraph.NodeId) {
	t.Helper()
	b := dspgraph.NewBuilder[float64](dspgraph.NewContext(44100*freq.Hertz, blockSize, 1))
	gain := blocks.NewGain[float64](1, 0)
	out := blocks.NewOutput[float64](1)
	gainID := b.Add(gain)
	outID := b.Add(out)
	require.NoError(t, b.Connect(gainID, 0, outID, 0))
	g, err := b.Build()
	require.NoError(t, err)
	return g, outID
}

func TestSignalYieldsInterleavedSamples(t *testing.T) {
	g, outID := buildConstGraph(t, 8)
	sig := NewSignal(g, outID, 1, nil)

	for i := 0; i < 8; i++ {
		v, ok := sig.Next()
		require.True(t, ok)
		require.Equal(t, 0.0, v)
	}
}

func TestSignalRefillsAfterBlockDrained(t *testing.T) {
	g, outID := buildConstGraph(t, 4)
	sig := NewSignal(g, outID, 1, nil)

	for i := 0; i < 4; i++ {
		_, ok := sig.Next()
		require.True(t, ok)
	}
	ctxBefore := g.Context().CurrentSample
	_, ok := sig.Next()
	require.True(t, ok)
	require.Greater(t, g.Context().CurrentSample, ctxBefore)
}
