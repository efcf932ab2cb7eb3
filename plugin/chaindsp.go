package plugin

import (
	"zikichombo.org/dspgraph"
	"zikichombo.org/dspgraph/blocks"
)

// ChainDsp is a minimal Dsp implementation: a single Oscillator feeding a
// Gain stage feeding Output, all mono -- the Go equivalent of the
// PluginGraph example in the original PluginDsp trait's doc comment (a
// GainBlock behind the lifecycle), provided so Handle has a concrete,
// realistic Dsp to carry rather than only a test fake. Process ignores
// its inputs, since ChainDsp is a self-contained generator chain.
type ChainDsp[S dspgraph.Sample] struct {
	freqHz S
	gainDb S

	graph    *dspgraph.Graph[S]
	oscID    dspgraph.NodeId
	gainID   dspgraph.NodeId
	outputID dspgraph.NodeId
}

// NewChainDsp creates a ChainDsp oscillating at freqHz through a Gain
// stage initialized to gainDb decibels.
func NewChainDsp[S dspgraph.Sample](freqHz, gainDb S) *ChainDsp[S] {
	return &ChainDsp[S]{freqHz: freqHz, gainDb: gainDb}
}

func (c *ChainDsp[S]) Prepare(ctx dspgraph.Context) {
	b := dspgraph.NewBuilder[S](ctx)
	osc := blocks.NewOscillator[S](c.freqHz, blocks.Sine)
	gain := blocks.NewGain[S](1, c.gainDb)
	out := blocks.NewOutput[S](1)

	oscID := b.Add(osc)
	gainID := b.Add(gain)
	outID := b.Add(out)
	_ = b.Connect(oscID, 0, gainID, 0)
	_ = b.Connect(gainID, 0, outID, 0)

	graph, err := b.Build()
	if err != nil {
		panic(err)
	}
	c.graph = graph
	c.oscID = oscID
	c.gainID = gainID
	c.outputID = outID
}

func (c *ChainDsp[S]) Reset() {
	if c.graph != nil {
		c.graph.Reset()
	}
}

// ApplyParameters expects a two-element array: [0] frequency in Hz,
// [1] gain in dB.
func (c *ChainDsp[S]) ApplyParameters(params []S) {
	if c.graph == nil {
		return
	}
	if len(params) > 0 {
		c.graph.ApplyParamUpdate(dspgraph.ParamUpdate[S]{Node: c.oscID, Target: "frequency", Value: params[0]})
	}
	if len(params) > 1 {
		c.graph.ApplyParamUpdate(dspgraph.ParamUpdate[S]{Node: c.gainID, Target: "level_db", Value: params[1]})
	}
}

func (c *ChainDsp[S]) Process(_, outputs [][]S, ctx *dspgraph.Context) {
	if c.graph == nil {
		c.Prepare(*ctx)
	}
	c.graph.ProcessBlock()
	if len(outputs) > 0 {
		copy(outputs[0], c.graph.OutputOf(c.outputID, 0))
	}
}
