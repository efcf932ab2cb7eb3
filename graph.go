package dspgraph

// incomingAudio records one audio edge feeding a particular (node, input)
// slot, precomputed at Build time so ProcessBlock never re-scans the full
// connection list.
type incomingAudio struct {
	srcNode NodeId
	srcOut  int
}

// modulationSource is implemented by nodes that produce block-rate
// modulation signals; it mirrors the metadata in ModulationOutputs but
// carries the actual resolved samples for the block just processed.
// ModulationValues must return a slice whose length matches
// ModulationOutputs(); index 0 is the value a modulation edge from this
// node delivers to its consumers.
type modulationSource[S Sample] interface {
	ModulationValues() []S
}

// Graph is a sealed, schedulable directed graph of nodes. It is produced
// exclusively by (*Builder).Build and cannot be mutated afterwards: no
// edges or nodes may be added or removed once built.
type Graph[S Sample] struct {
	ctx         Context
	nodes       []Node[S]
	connections []connection
	modEdges    []modulationEdge
	order       []NodeId
	position    []int // position[id] = index of id within order

	outputBuffers [][]*AudioBuffer[S] // [node][outputIdx]
	inputScratch  [][]*AudioBuffer[S] // [node][inputIdx]
	incoming      [][][]incomingAudio // [node][inputIdx] -> sources

	inputViews  [][][]S // [node] -> reusable [][]S view over inputScratch
	outputViews [][][]S // [node] -> reusable [][]S view over outputBuffers

	modScratch []S // indexed by producer NodeId, rebuilt each block
}

// prepare allocates every buffer and precomputed index the scheduler
// needs, once, right after the topological order is known. Nothing here
// runs again during ProcessBlock.
func (g *Graph[S]) prepare() {
	n := len(g.nodes)
	g.outputBuffers = make([][]*AudioBuffer[S], n)
	g.inputScratch = make([][]*AudioBuffer[S], n)
	g.incoming = make([][][]incomingAudio, n)
	g.inputViews = make([][][]S, n)
	g.outputViews = make([][][]S, n)
	g.modScratch = make([]S, n)

	for id, node := range g.nodes {
		outs := make([]*AudioBuffer[S], node.OutputCount())
		for i := range outs {
			outs[i] = NewAudioBuffer[S](g.ctx.BlockSize)
		}
		g.outputBuffers[id] = outs
		g.outputViews[id] = make([][]S, node.OutputCount())

		ins := make([]*AudioBuffer[S], node.InputCount())
		for i := range ins {
			ins[i] = NewAudioBuffer[S](g.ctx.BlockSize)
		}
		g.inputScratch[id] = ins
		g.inputViews[id] = make([][]S, node.InputCount())

		g.incoming[id] = make([][]incomingAudio, node.InputCount())
	}

	for _, c := range g.connections {
		g.incoming[c.dst][c.dstIn] = append(g.incoming[c.dst][c.dstIn], incomingAudio{srcNode: c.src, srcOut: c.srcOut})
	}
}

// NodeCount reports how many nodes the graph owns.
func (g *Graph[S]) NodeCount() int { return len(g.nodes) }

// Order returns the evaluation order computed at Build. It is exposed
// read-only for tests asserting topological soundness.
func (g *Graph[S]) Order() []NodeId { return append([]NodeId(nil), g.order...) }

// Position reports where id falls within the evaluation order; used by
// tests checking order(u) < order(v) for every edge u->v.
func (g *Graph[S]) Position(id NodeId) int { return g.position[id] }

// Context returns a copy of the graph's session configuration.
func (g *Graph[S]) Context() Context { return g.ctx }

// OutputOf exposes node id's output buffer outIdx for read, for use by
// collaborators such as sampler.Signal that pull interleaved samples out
// of the graph's terminal node after a block.
func (g *Graph[S]) OutputOf(id NodeId, outIdx int) []S {
	return g.outputBuffers[id][outIdx].Slice()
}

// ProcessBlock runs one block: it resolves modulation, sums audio inputs
// and calls Process on every node in topological order, then advances
// the sample counter. It performs zero heap allocation in steady state.
func (g *Graph[S]) ProcessBlock() {
	z := zero[S]()
	for i := range g.modScratch {
		g.modScratch[i] = z
	}

	for _, id := range g.order {
		node := g.nodes[id]

		g.fillInputs(id)
		inputSlices := g.borrowInputSlices(id)
		outputSlices := g.borrowOutputSlices(id)

		node.Process(inputSlices, outputSlices, g.modScratch, &g.ctx)

		if src, ok := node.(modulationSource[S]); ok {
			vals := src.ModulationValues()
			if len(vals) > 0 {
				g.modScratch[id] = vals[0]
			}
		}
	}

	g.ctx.advance()
}

// fillInputs zeroes and re-sums every input scratch buffer for node id
// from its incoming audio edges.
func (g *Graph[S]) fillInputs(id NodeId) {
	for inIdx, buf := range g.inputScratch[id] {
		buf.Zero()
		for _, src := range g.incoming[id][inIdx] {
			buf.addFrom(g.outputBuffers[src.srcNode][src.srcOut].Slice())
		}
	}
}

// borrowInputSlices and borrowOutputSlices hand the node its [][]S views
// over already-allocated buffers. The outer [][]S header is reused every
// block (a small fixed-size slice of slice headers, not sample data);
// only the per-element slice headers are refreshed, matching the
// teacher's packet.go pattern of reusing backing arrays across calls.
func (g *Graph[S]) borrowInputSlices(id NodeId) [][]S {
	views := g.inputViews[id]
	for i, b := range g.inputScratch[id] {
		views[i] = b.MutSlice()
	}
	return views
}

func (g *Graph[S]) borrowOutputSlices(id NodeId) [][]S {
	views := g.outputViews[id]
	for i, b := range g.outputBuffers[id] {
		views[i] = b.MutSlice()
	}
	return views
}

// ApplyParamUpdate looks up u.Node and, if it implements ParamSetter,
// overwrites the named parameter with u.Value. It is the "look up a node
// by id and overwrite a parameter atomically between blocks" capability
// the spec requires the graph to expose for the control-thread queue;
// callers drain a ParamQueue through this method once per ProcessBlock.
// Unknown nodes or targets are silently ignored.
func (g *Graph[S]) ApplyParamUpdate(u ParamUpdate[S]) {
	if int(u.Node) < 0 || int(u.Node) >= len(g.nodes) {
		return
	}
	if setter, ok := g.nodes[u.Node].(ParamSetter[S]); ok {
		setter.SetParam(normalizeTargetName(u.Target), u.Value)
	}
}

// Reset clears every node's feedback-carrying state (for nodes
// implementing Resettable) while preserving topology and buffers.
func (g *Graph[S]) Reset() {
	for _, node := range g.nodes {
		if r, ok := node.(Resettable); ok {
			r.Reset()
		}
	}
	g.ctx.CurrentSample = 0
}

// SetSampleRate notifies every node implementing SampleRateAware of a
// new rate, without rebuilding topology. The graph's Context keeps the
// sample rate it was built with.
func (g *Graph[S]) SetSampleRate(hz float64) {
	for _, node := range g.nodes {
		if s, ok := node.(SampleRateAware); ok {
			s.SetSampleRate(hz)
		}
	}
}
