package blocks

import "zikichombo.org/dspgraph"

// Output is the terminal collection point for a graph's audible signal:
// N inputs, N outputs, forwarding each channel verbatim. A graph with no
// Output node still schedules and runs correctly; Output exists so a
// caller (sampler.Signal, a plugin host) has somewhere fixed to read
// the finished mix from.
type Output[S dspgraph.Sample] struct {
	channels int
}

// NewOutput creates an Output node for the given channel count.
func NewOutput[S dspgraph.Sample](channels int) *Output[S] {
	return &Output[S]{channels: channels}
}

func (o *Output[S]) Process(inputs, outputs [][]S, _ []S, _ *dspgraph.Context) {
	for ch, in := range inputs {
		copy(outputs[ch], in)
	}
}

func (o *Output[S]) InputCount() int                       { return o.channels }
func (o *Output[S]) OutputCount() int                      { return o.channels }
func (o *Output[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }
