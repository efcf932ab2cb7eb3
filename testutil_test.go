package dspgraph

import "zikichombo.org/sound/freq"

// fx is the sample type test fixtures in this package use; block
// implementations are exercised with both float32 and float64 in package
// blocks.
type fx = float64

func testContext(blockSize int) Context {
	return NewContext(48000*freq.Hertz, blockSize, 1)
}

// passthroughNode is a minimal fixture node: n inputs, n outputs, copies
// input i to output i verbatim.
type passthroughNode struct {
	n int
}

func (p *passthroughNode) Process(inputs, outputs [][]fx, _ []fx, _ *Context) {
	for i := 0; i < p.n; i++ {
		copy(outputs[i], inputs[i])
	}
}
func (p *passthroughNode) InputCount() int                       { return p.n }
func (p *passthroughNode) OutputCount() int                      { return p.n }
func (p *passthroughNode) ModulationOutputs() []ModulationOutput { return nil }

// constNode emits a fixed value on every output sample; zero inputs.
type constNode struct {
	n     int
	value fx
}

func (c *constNode) Process(_ [][]fx, outputs [][]fx, _ []fx, _ *Context) {
	for i := 0; i < c.n; i++ {
		for s := range outputs[i] {
			outputs[i][s] = c.value
		}
	}
}
func (c *constNode) InputCount() int                       { return 0 }
func (c *constNode) OutputCount() int                      { return c.n }
func (c *constNode) ModulationOutputs() []ModulationOutput { return nil }

// fakeModulator has one modulation output and no audio ports; exercises
// Modulate's src-side validation and modulation value propagation.
type fakeModulator struct {
	value fx
}

func (f *fakeModulator) Process([][]fx, [][]fx, []fx, *Context) {}
func (f *fakeModulator) InputCount() int                         { return 0 }
func (f *fakeModulator) OutputCount() int                        { return 0 }
func (f *fakeModulator) ModulationOutputs() []ModulationOutput {
	return []ModulationOutput{{Name: "lfo", Min: -1, Max: 1}}
}
func (f *fakeModulator) ModulationValues() []fx { return []fx{f.value} }

// fakeModulatable implements ModulationTargetLister with a fixed target
// list, to exercise Modulate's dst-side validation.
type fakeModulatable struct {
	targets []string
	seen    []fx
}

func (f *fakeModulatable) Process(_ [][]fx, _ [][]fx, mod []fx, _ *Context) {
	f.seen = append(f.seen, mod...)
}
func (f *fakeModulatable) InputCount() int                       { return 0 }
func (f *fakeModulatable) OutputCount() int                      { return 0 }
func (f *fakeModulatable) ModulationOutputs() []ModulationOutput { return nil }
func (f *fakeModulatable) ModulationTargets() []string           { return f.targets }

// fakeModNode both produces a modulation output and accepts modulation
// edges, to exercise cycle rejection across two modulation edges.
type fakeModNode struct {
	targets []string
	value   fx
}

func (f *fakeModNode) Process([][]fx, [][]fx, []fx, *Context) {}
func (f *fakeModNode) InputCount() int                         { return 0 }
func (f *fakeModNode) OutputCount() int                        { return 0 }
func (f *fakeModNode) ModulationOutputs() []ModulationOutput {
	return []ModulationOutput{{Name: "out", Min: -1, Max: 1}}
}
func (f *fakeModNode) ModulationValues() []fx     { return []fx{f.value} }
func (f *fakeModNode) ModulationTargets() []string { return f.targets }
