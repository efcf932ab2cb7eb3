package blocks

import "zikichombo.org/dspgraph"

// LFO is a zero-input, one-output, block-rate modulation source. Unlike
// Oscillator it computes exactly one sample per block -- at the block's
// start -- and holds it for the block's duration, both on its audio
// output (filled uniformly, useful for visualization) and as the value
// consumers read through a modulation edge.
type LFO[S dspgraph.Sample] struct {
	Frequency dspgraph.Parameter[S]
	Depth     dspgraph.Parameter[S]

	waveform  Waveform
	dutyCycle float64
	phase     float64
	rng       *xorShiftRng
	lastValue S
}

// NewLFO creates an LFO at a fixed rate, depth and waveform. depth scales
// the waveform's own [-1, 1] range.
func NewLFO[S dspgraph.Sample](rateHz, depth S, waveform Waveform) *LFO[S] {
	return &LFO[S]{
		Frequency: dspgraph.Constant(rateHz),
		Depth:     dspgraph.Constant(depth),
		waveform:  waveform,
		dutyCycle: defaultDutyCycle,
		rng:       newXorShiftRng(1),
	}
}

func (l *LFO[S]) Process(_ [][]S, outputs [][]S, mod []S, ctx *dspgraph.Context) {
	rateHz := float64(l.Frequency.Resolve(mod))
	depth := float64(l.Depth.Resolve(mod))
	increment := rateHz / ctx.SampleRateHz() * twoPi

	value := sample(l.waveform, l.phase, l.dutyCycle, l.rng) * depth
	l.lastValue = S(value)

	out := outputs[0]
	for i := range out {
		out[i] = l.lastValue
	}

	l.phase += increment * float64(ctx.BlockSize)
	for l.phase >= twoPi {
		l.phase -= twoPi
	}
}

func (l *LFO[S]) InputCount() int  { return 0 }
func (l *LFO[S]) OutputCount() int { return 1 }

// ModulationOutputs declares the single block-rate signal this LFO
// exposes, ranging over [-1, 1] before Depth scaling.
func (l *LFO[S]) ModulationOutputs() []dspgraph.ModulationOutput {
	return []dspgraph.ModulationOutput{{Name: "lfo", Min: -1, Max: 1, Mode: dspgraph.ModulationAdditive}}
}

// ModulationValues reports the value computed by the most recent Process
// call, read by the graph's scheduler immediately afterward so any
// consumer later in the same block's evaluation order observes it.
func (l *LFO[S]) ModulationValues() []S { return []S{l.lastValue} }

func (l *LFO[S]) Reset() { l.phase = 0 }
