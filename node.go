package dspgraph

// Node is the shared processing contract every block implementation
// satisfies. The graph owns each node value exclusively; nodes must not
// retain references to the slices they are given across calls.
//
// Process is invoked once per block, in topological order. inputs has
// length InputCount(), each slice exactly context.BlockSize samples and
// already summed across every incident audio edge (silence if none).
// outputs has length OutputCount(), each slice exactly context.BlockSize
// samples, caller-owned and undefined on entry. modulationValues is
// indexed by producer NodeId and holds the last block-start sample from
// any node this graph lets this node observe; entries for producers this
// node has no modulation edge from are undefined and must not be read.
//
// Process must not block, allocate in the steady state, or retain
// references to inputs, outputs or modulationValues beyond the call.
type Node[S Sample] interface {
	Process(inputs [][]S, outputs [][]S, modulationValues []S, ctx *Context)
	InputCount() int
	OutputCount() int
	ModulationOutputs() []ModulationOutput
}

// Resettable is implemented optionally by nodes that carry feedback state
// (filters, DC blockers, delay lines, phase accumulators). Reset clears
// that state while preserving the node's identity and topology; it is
// called by Graph.Reset and by the plugin host boundary's Reset.
type Resettable interface {
	Reset()
}

// SampleRateAware is implemented optionally by nodes whose internal
// coefficients depend on the sample rate (e.g. a DC blocker's pole).
// Graph.SetSampleRate calls SetSampleRate on every node that implements
// it.
type SampleRateAware interface {
	SetSampleRate(hz float64)
}

// ParamSetter is implemented optionally by nodes whose parameters can be
// overwritten from outside the audio thread, via ParamQueue.Drain at a
// block boundary. SetParam's target is matched the same way modulation
// targets are (normalized, case-insensitive); nodes should ignore
// unrecognized targets rather than panic, since a queued update from a
// stale schema must never crash the audio thread.
type ParamSetter[S Sample] interface {
	SetParam(target string, value S)
}
