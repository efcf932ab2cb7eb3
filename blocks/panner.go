package blocks

import (
	"math"

	"zikichombo.org/dspgraph"
)

// linearSmoothedValue ramps linearly toward a target over a fixed number
// of samples, avoiding the zipper noise an instantaneous jump in pan
// position (or any other audio-rate-read control) would otherwise cause.
type linearSmoothedValue struct {
	current, target, step float64
	remaining              int
	rampSamples            int
}

func newLinearSmoothedValue(initial float64, rampSamples int) *linearSmoothedValue {
	if rampSamples < 1 {
		rampSamples = 1
	}
	return &linearSmoothedValue{current: initial, target: initial, rampSamples: rampSamples}
}

func (v *linearSmoothedValue) setTarget(target float64) {
	v.target = target
	v.remaining = v.rampSamples
	v.step = (target - v.current) / float64(v.rampSamples)
}

func (v *linearSmoothedValue) next() float64 {
	if v.remaining <= 0 {
		v.current = v.target
		return v.current
	}
	v.current += v.step
	v.remaining--
	return v.current
}

// Panner is a stereo panner using a constant-power pan law: position in
// [-100, 100] maps to an angle in [0, pi/2], with left gain cos(angle)
// and right gain sin(angle). Position changes are smoothed by a linear
// ramp of 64 samples to avoid zipper noise.
type Panner[S dspgraph.Sample] struct {
	Position dspgraph.Parameter[S]

	smoother *linearSmoothedValue
}

// NewPanner creates a Panner at the given position (0 is centre).
func NewPanner[S dspgraph.Sample](position S) *Panner[S] {
	return &Panner[S]{
		Position: dspgraph.Constant(position),
		smoother: newLinearSmoothedValue(float64(position), 64),
	}
}

func calculateGains(position float64) (left, right float64) {
	normalized := (position + 100) / 200
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	angle := normalized * math.Pi / 2
	return math.Cos(angle), math.Sin(angle)
}

func (p *Panner[S]) Process(inputs, outputs [][]S, mod []S, _ *dspgraph.Context) {
	target := float64(p.Position.Resolve(mod))
	if math.Abs(target-p.smoother.target) > 1e-9 {
		p.smoother.setTarget(target)
	}

	left := inputs[0]
	right := left
	stereoIn := len(inputs) > 1
	if stereoIn {
		right = inputs[1]
	}

	n := len(left)
	if len(outputs[0]) < n {
		n = len(outputs[0])
	}
	for i := 0; i < n; i++ {
		leftGain, rightGain := calculateGains(p.smoother.next())
		l := float64(left[i])
		r := l
		if stereoIn {
			r = float64(right[i])
		}
		outputs[0][i] = S(l * leftGain)
		if len(outputs) > 1 {
			outputs[1][i] = S(r * rightGain)
		}
	}
}

func (p *Panner[S]) InputCount() int                       { return 2 }
func (p *Panner[S]) OutputCount() int                      { return 2 }
func (p *Panner[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }

func (p *Panner[S]) ModulationTargets() []string { return []string{"position"} }

func (p *Panner[S]) SetParam(target string, value S) {
	if target == "position" {
		p.Position.Base = value
	}
}
