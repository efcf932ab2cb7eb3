package blocks

import (
	"math"

	"zikichombo.org/dspgraph"
)

// DCBlocker is a first-order high-pass filter removing DC offset, a
// one-pole design with roughly a 5Hz cutoff: y[n] = x[n] - x[n-1] +
// coeff*y[n-1]. Its feedback state is flushed of denormals every sample,
// since a quiet passage would otherwise leave y[n-1] subnormal
// indefinitely.
type DCBlocker[S dspgraph.Sample] struct {
	Enabled bool

	channels int
	xPrev    []float64
	yPrev    []float64
	coeff    float64
}

// NewDCBlocker creates a DCBlocker for the given channel count, enabled
// by default, with its coefficient set for a 44.1kHz sample rate until
// SetSampleRate is called.
func NewDCBlocker[S dspgraph.Sample](channels int) *DCBlocker[S] {
	d := &DCBlocker[S]{
		Enabled:  true,
		channels: channels,
		xPrev:    make([]float64, channels),
		yPrev:    make([]float64, channels),
	}
	d.SetSampleRate(44100)
	return d
}

// SetSampleRate recomputes the filter's pole for a ~5Hz cutoff at hz.
func (d *DCBlocker[S]) SetSampleRate(hz float64) {
	const cutoffHz = 5.0
	coeff := 1 - (2*math.Pi*cutoffHz)/hz
	if coeff < 0.9 {
		coeff = 0.9
	}
	if coeff > 0.9999 {
		coeff = 0.9999
	}
	d.coeff = coeff
}

func (d *DCBlocker[S]) Process(inputs, outputs [][]S, _ []S, _ *dspgraph.Context) {
	if !d.Enabled {
		for ch, in := range inputs {
			copy(outputs[ch], in)
		}
		return
	}
	for ch, in := range inputs {
		if ch >= len(d.xPrev) {
			break
		}
		out := outputs[ch]
		xPrev, yPrev := d.xPrev[ch], d.yPrev[ch]
		for i, sv := range in {
			x := float64(sv)
			y := x - xPrev + d.coeff*yPrev
			xPrev = x
			yPrev = flushDenormal64(y)
			out[i] = S(y)
		}
		d.xPrev[ch] = xPrev
		d.yPrev[ch] = yPrev
	}
}

func (d *DCBlocker[S]) InputCount() int                       { return d.channels }
func (d *DCBlocker[S]) OutputCount() int                      { return d.channels }
func (d *DCBlocker[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }

// Reset clears the filter's feedback state.
func (d *DCBlocker[S]) Reset() {
	for i := range d.xPrev {
		d.xPrev[i] = 0
		d.yPrev[i] = 0
	}
}
