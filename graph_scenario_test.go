package dspgraph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"zikichombo.org/sound/freq"
)

// sineOscNode is the minimal oscillator fixture used by the scenario
// tests: zero inputs, one output, no modulation outputs, additive
// frequency modulation, phase accumulator in [0, 2*pi).
type sineOscNode struct {
	baseFreq fx
	phase    float64
	modSrc   NodeId
	hasMod   bool
}

func (o *sineOscNode) Process(_ [][]fx, outputs [][]fx, mod []fx, ctx *Context) {
	freqHz := float64(o.baseFreq)
	if o.hasMod {
		freqHz += float64(mod[o.modSrc])
	}
	inc := freqHz / ctx.SampleRateHz() * 2 * math.Pi
	out := outputs[0]
	for i := range out {
		out[i] = fx(math.Sin(o.phase))
		o.phase += inc
		if o.phase >= 2*math.Pi {
			o.phase -= 2 * math.Pi
		}
	}
}
func (o *sineOscNode) InputCount() int                       { return 0 }
func (o *sineOscNode) OutputCount() int                      { return 1 }
func (o *sineOscNode) ModulationOutputs() []ModulationOutput { return nil }
func (o *sineOscNode) ModulationTargets() []string            { return []string{"frequency"} }
func (o *sineOscNode) SetModSource(id NodeId)                 { o.modSrc, o.hasMod = id, true }

// gainNode: one input, one output, multiplies by 10^(dB/20).
type gainNode struct {
	db fx
}

func (g *gainNode) Process(inputs, outputs [][]fx, _ []fx, _ *Context) {
	linear := fx(math.Pow(10, float64(g.db)/20))
	for i, v := range inputs[0] {
		outputs[0][i] = v * linear
	}
}
func (g *gainNode) InputCount() int                       { return 1 }
func (g *gainNode) OutputCount() int                      { return 1 }
func (g *gainNode) ModulationOutputs() []ModulationOutput { return nil }

// outputNode: N inputs, N outputs, forwards verbatim.
type outputNode struct{ n int }

func (o *outputNode) Process(inputs, outputs [][]fx, _ []fx, _ *Context) {
	for i := 0; i < o.n; i++ {
		copy(outputs[i], inputs[i])
	}
}
func (o *outputNode) InputCount() int                       { return o.n }
func (o *outputNode) OutputCount() int                      { return o.n }
func (o *outputNode) ModulationOutputs() []ModulationOutput { return nil }

// lfoNode: zero inputs, no audio outputs, one modulation output with
// declared range [-1, 1]; it emits its fixed depth every block.
type lfoNode struct {
	depth fx
}

func (l *lfoNode) Process(_ [][]fx, _ [][]fx, _ []fx, _ *Context) {}
func (l *lfoNode) InputCount() int                                { return 0 }
func (l *lfoNode) OutputCount() int                               { return 0 }
func (l *lfoNode) ModulationOutputs() []ModulationOutput {
	return []ModulationOutput{{Name: "lfo", Min: -1, Max: 1}}
}
func (l *lfoNode) ModulationValues() []fx { return []fx{l.depth} }

func TestScenarioS1SilentGraph(t *testing.T) {
	b := NewBuilder[fx](NewContext(48000*freq.Hertz, 8, 1))
	b.Add(&outputNode{n: 1})
	g, err := b.Build()
	require.NoError(t, err)

	g.ProcessBlock()
	out := g.OutputOf(0, 0)
	require.Len(t, out, 8)
	for _, v := range out {
		require.Equal(t, fx(0), v)
	}
}

func TestScenarioS2ConstantOscillatorPhase(t *testing.T) {
	b := NewBuilder[fx](NewContext(48000*freq.Hertz, 4, 1))
	osc := b.Add(&sineOscNode{baseFreq: 0})
	out := b.Add(&outputNode{n: 1})
	require.NoError(t, b.Connect(osc, 0, out, 0))
	g, err := b.Build()
	require.NoError(t, err)

	g.ProcessBlock()
	got := g.OutputOf(out, 0)
	require.Equal(t, []fx{0, 0, 0, 0}, got)
}

func TestScenarioS3UnityGainPassthrough(t *testing.T) {
	sr := fx(48000)
	b := NewBuilder[fx](NewContext(freq.T(sr)*freq.Hertz, 4, 1))
	osc := b.Add(&sineOscNode{baseFreq: sr / 4})
	gain := b.Add(&gainNode{db: 0})
	out := b.Add(&outputNode{n: 1})
	require.NoError(t, b.Connect(osc, 0, gain, 0))
	require.NoError(t, b.Connect(gain, 0, out, 0))
	g, err := b.Build()
	require.NoError(t, err)

	g.ProcessBlock()
	got := g.OutputOf(out, 0)
	want := []fx{0, 1, 0, -1}
	require.Len(t, got, 4)
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-6)
	}
}

func TestScenarioS4SummingMixer(t *testing.T) {
	b := NewBuilder[fx](NewContext(48000*freq.Hertz, 4, 1))
	a := b.Add(&constNode{n: 1, value: 0.5})
	c := b.Add(&constNode{n: 1, value: 0.5})
	gain := b.Add(&gainNode{db: 0})
	out := b.Add(&outputNode{n: 1})
	require.NoError(t, b.Connect(a, 0, gain, 0))
	require.NoError(t, b.Connect(c, 0, gain, 0))
	require.NoError(t, b.Connect(gain, 0, out, 0))
	g, err := b.Build()
	require.NoError(t, err)

	g.ProcessBlock()
	got := g.OutputOf(out, 0)
	for _, v := range got {
		require.InDelta(t, 1.0, v, 1e-9)
	}
}

func TestScenarioS5CycleRejection(t *testing.T) {
	b := NewBuilder[fx](testContext(4))
	a := b.Add(&passthroughNode{n: 1})
	c := b.Add(&passthroughNode{n: 1})

	require.NoError(t, b.Connect(a, 0, c, 0))
	err := b.Connect(c, 0, a, 0)
	require.ErrorIs(t, err, ErrCycleDetected)
}

func TestScenarioS6ModulationOrdering(t *testing.T) {
	b := NewBuilder[fx](NewContext(48000*freq.Hertz, 4, 1))
	lfo := b.Add(&lfoNode{depth: 1})
	osc := &sineOscNode{baseFreq: 0}
	oscId := b.Add(osc)
	osc.SetModSource(lfo)
	require.NoError(t, b.Modulate(lfo, oscId, "frequency"))

	g, err := b.Build()
	require.NoError(t, err)
	require.Less(t, g.Position(lfo), g.Position(oscId))

	g.ProcessBlock()
	// baseFreq is 0, so any phase advance at all can only have come from
	// the LFO's block-start modulation value having already been
	// resolved when the oscillator's Process ran.
	require.NotEqual(t, 0.0, osc.phase)
}
