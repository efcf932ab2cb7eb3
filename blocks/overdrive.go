package blocks

import (
	"math"

	"zikichombo.org/dspgraph"
)

// Overdrive is a one-input, one-output saturation effect: drive scales
// the signal before an asymmetric tanh soft-clip (softer on the positive
// half, harder on the negative half), then a one-pole tone filter
// shapes the result before Level scales the output.
type Overdrive[S dspgraph.Sample] struct {
	Drive float64
	Level float64
	Tone  float64

	filterState       float64
	filterCoefficient float64
}

// NewOverdrive creates an Overdrive effect for the given drive, output
// level, tone (0 darker .. 1 brighter) and sample rate.
func NewOverdrive[S dspgraph.Sample](drive, level, tone, sampleRateHz float64) *Overdrive[S] {
	o := &Overdrive[S]{Drive: drive, Level: level, Tone: tone}
	o.SetSampleRate(sampleRateHz)
	return o
}

func (o *Overdrive[S]) SetSampleRate(hz float64) {
	cutoff := 300 + (o.Tone + 2700)
	o.filterCoefficient = 1 - math.Exp(-2*math.Pi*cutoff/hz)
}

func softClip(x float64) float64 {
	return math.Tanh(x*1.5) / 1.5
}

func asymmetricSaturation(x float64) float64 {
	if x > 0 {
		return softClip(x*0.7) * 1.4
	}
	return softClip(x*1.2) * 0.8
}

func (o *Overdrive[S]) Process(inputs, outputs [][]S, _ []S, _ *dspgraph.Context) {
	for ch, in := range inputs {
		out := outputs[ch]
		for i, sv := range in {
			driven := float64(sv) * o.Drive
			clipped := asymmetricSaturation(driven)
			o.filterState += o.filterCoefficient * (clipped - o.filterState)
			out[i] = S(o.filterState * o.Level)
		}
	}
}

func (o *Overdrive[S]) InputCount() int                       { return 1 }
func (o *Overdrive[S]) OutputCount() int                      { return 1 }
func (o *Overdrive[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }

// Reset clears the tone filter's feedback state.
func (o *Overdrive[S]) Reset() { o.filterState = 0 }
