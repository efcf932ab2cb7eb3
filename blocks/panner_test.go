package blocks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"zikichombo.org/dspgraph"
)

func TestCalculateGainsCenterIsEqualPower(t *testing.T) {
	left, right := calculateGains(0)
	require.InDelta(t, left, right, 1e-9)
	require.InDelta(t, 1.0, left*left+right*right, 1e-9)
}

func TestCalculateGainsHardLeftSilencesRight(t *testing.T) {
	left, right := calculateGains(-100)
	require.InDelta(t, 1.0, left, 1e-9)
	require.InDelta(t, 0.0, right, 1e-9)
}

func TestCalculateGainsHardRightSilencesLeft(t *testing.T) {
	left, right := calculateGains(100)
	require.InDelta(t, 0.0, left, 1e-9)
	require.InDelta(t, 1.0, right, 1e-9)
}

func TestCalculateGainsClampsOutOfRange(t *testing.T) {
	left, right := calculateGains(1000)
	require.InDelta(t, 0.0, left, 1e-9)
	require.InDelta(t, 1.0, right, 1e-9)
}

func TestPannerRampsTowardNewTargetOverRampSamples(t *testing.T) {
	p := NewPanner[float64](0)
	ctx := dspgraph.NewContext(44100, 128, 1)
	p.Position = dspgraph.Constant[float64](100)

	inL := make([]float64, 128)
	inR := make([]float64, 128)
	for i := range inL {
		inL[i] = 1.0
		inR[i] = 1.0
	}
	outL := make([]float64, 128)
	outR := make([]float64, 128)

	p.Process([][]float64{inL, inR}, [][]float64{outL, outR}, nil, &ctx)

	require.Less(t, outL[len(outL)-1], outL[0])
	require.InDelta(t, 0.0, outL[len(outL)-1], 1e-6)
	require.InDelta(t, 1.0, math.Abs(outR[len(outR)-1]), 1e-6)
}
