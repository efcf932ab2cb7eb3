package blocks

import "zikichombo.org/dspgraph"

// VCA (voltage controlled amplifier) multiplies an audio signal (input 0)
// by a control signal (input 1, typically 0..1 from an envelope). When
// Process is given no control slice, the gain is unity; inside a graph
// an unconnected control input arrives as silence, so the output is zero.
type VCA[S dspgraph.Sample] struct{}

func NewVCA[S dspgraph.Sample]() *VCA[S] { return &VCA[S]{} }

func (v *VCA[S]) Process(inputs, outputs [][]S, _ []S, _ *dspgraph.Context) {
	out := outputs[0]
	var audio, control []S
	if len(inputs) > 0 {
		audio = inputs[0]
	}
	if len(inputs) > 1 {
		control = inputs[1]
	}
	one := S(1)
	for i := range out {
		var a, c S
		if i < len(audio) {
			a = audio[i]
		}
		if i < len(control) {
			c = control[i]
		} else {
			c = one
		}
		out[i] = a * c
	}
}

func (v *VCA[S]) InputCount() int                       { return 2 }
func (v *VCA[S]) OutputCount() int                      { return 1 }
func (v *VCA[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }
