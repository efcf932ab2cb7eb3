package blocks

import (
	"math"

	"zikichombo.org/dspgraph"
)

// LowPass is a one-pole low-pass filter: y[n] = y[n-1] + alpha*(x[n] -
// y[n-1]), with alpha recomputed from Cutoff every block. Cutoff is a
// Parameter, so it may be modulated. Feedback state is flushed of
// denormals every sample.
type LowPass[S dspgraph.Sample] struct {
	Cutoff dspgraph.Parameter[S]

	sampleRateHz float64
	state        float64
}

// NewLowPass creates a LowPass with a fixed cutoff in Hz.
func NewLowPass[S dspgraph.Sample](cutoffHz S) *LowPass[S] {
	return &LowPass[S]{Cutoff: dspgraph.Constant(cutoffHz), sampleRateHz: 44100}
}

func (f *LowPass[S]) SetSampleRate(hz float64) { f.sampleRateHz = hz }

func (f *LowPass[S]) Process(inputs, outputs [][]S, mod []S, _ *dspgraph.Context) {
	cutoff := float64(f.Cutoff.Resolve(mod))
	alpha := 1 - math.Exp(-2*math.Pi*cutoff/f.sampleRateHz)

	in, out := inputs[0], outputs[0]
	state := f.state
	for i, sv := range in {
		state += alpha * (float64(sv) - state)
		state = flushDenormal64(state)
		out[i] = S(state)
	}
	f.state = state
}

func (f *LowPass[S]) InputCount() int                       { return 1 }
func (f *LowPass[S]) OutputCount() int                      { return 1 }
func (f *LowPass[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }

func (f *LowPass[S]) ModulationTargets() []string { return []string{"cutoff"} }

func (f *LowPass[S]) SetParam(target string, value S) {
	if target == "cutoff" {
		f.Cutoff.Base = value
	}
}

// Reset clears the filter's feedback state.
func (f *LowPass[S]) Reset() { f.state = 0 }
