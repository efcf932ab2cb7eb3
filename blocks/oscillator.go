package blocks

import "zikichombo.org/dspgraph"

// Oscillator is a zero-input, one-output generator: a phase accumulator
// in [0, 2*pi) advanced by 2*pi*freq/sampleRate per sample. Frequency is
// a Parameter, so it may be a constant or modulated additively by an
// upstream node's modulation output (e.g. an LFO).
type Oscillator[S dspgraph.Sample] struct {
	Frequency dspgraph.Parameter[S]

	waveform  Waveform
	dutyCycle float64
	phase     float64
	rng       *xorShiftRng
}

// NewOscillator creates an Oscillator at a fixed frequency and waveform.
func NewOscillator[S dspgraph.Sample](freqHz S, waveform Waveform) *Oscillator[S] {
	return &Oscillator[S]{
		Frequency: dspgraph.Constant(freqHz),
		waveform:  waveform,
		dutyCycle: defaultDutyCycle,
		rng:       newXorShiftRng(1),
	}
}

func (o *Oscillator[S]) Process(_ [][]S, outputs [][]S, mod []S, ctx *dspgraph.Context) {
	freqHz := float64(o.Frequency.Resolve(mod))
	increment := freqHz / ctx.SampleRateHz() * twoPi

	out := outputs[0]
	for i := range out {
		out[i] = S(sample(o.waveform, o.phase, o.dutyCycle, o.rng))
		o.phase += increment
	}
	for o.phase >= twoPi {
		o.phase -= twoPi
	}
	for o.phase < 0 {
		o.phase += twoPi
	}
}

func (o *Oscillator[S]) InputCount() int                       { return 0 }
func (o *Oscillator[S]) OutputCount() int                      { return 1 }
func (o *Oscillator[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }

// ModulationTargets reports the one modulatable parameter an Oscillator
// exposes, so Builder.Modulate can validate edges targeting it.
func (o *Oscillator[S]) ModulationTargets() []string { return []string{"frequency"} }

// SetParam overwrites Frequency's base value, for control-thread updates
// drained from a dspgraph.ParamQueue between blocks.
func (o *Oscillator[S]) SetParam(target string, value S) {
	if target == "frequency" {
		o.Frequency.Base = value
	}
}

// Reset zeroes the phase accumulator, leaving Frequency untouched.
func (o *Oscillator[S]) Reset() { o.phase = 0 }
