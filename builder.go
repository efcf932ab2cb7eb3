package dspgraph

import "fmt"

// Builder constructs a Graph incrementally. Acyclicity is enforced
// incrementally: before any edge (audio or modulation) is added, a
// reachability check runs over the combined edge set so far; if dst
// already transitively reaches src, the edge is rejected and the
// builder's state is left unchanged. This keeps Build itself simple --
// the graph is known to be a DAG by construction once Build runs.
type Builder[S Sample] struct {
	ctx         Context
	nodes       []Node[S]
	connections []connection
	modEdges    []modulationEdge
	// adjacency for reachability checks, keyed by node, combining both
	// audio and modulation edges.
	adj [][]NodeId
}

// NewBuilder starts an empty builder for the given session configuration.
func NewBuilder[S Sample](ctx Context) *Builder[S] {
	return &Builder[S]{ctx: ctx}
}

// Add appends a node to the graph and returns its stable id.
func (b *Builder[S]) Add(n Node[S]) NodeId {
	id := NodeId(len(b.nodes))
	b.nodes = append(b.nodes, n)
	b.adj = append(b.adj, nil)
	return id
}

func (b *Builder[S]) nodeExists(id NodeId) bool {
	return id >= 0 && int(id) < len(b.nodes)
}

// reachable reports whether to is reachable from from via the combined
// edge set recorded so far (a plain BFS; builder-time only, never on the
// audio path).
func (b *Builder[S]) reachable(from, to NodeId) bool {
	if from == to {
		return true
	}
	visited := make([]bool, len(b.nodes))
	queue := []NodeId{from}
	visited[from] = true
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range b.adj[n] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// Connect adds an audio edge from src's output srcOut to dst's input
// dstIn. Multiple edges may target the same (dst, dstIn); they are summed
// at schedule time, not rejected as duplicates unless they are the exact
// same (src, srcOut, dst, dstIn) quadruple already present.
func (b *Builder[S]) Connect(src NodeId, srcOut int, dst NodeId, dstIn int) error {
	if !b.nodeExists(src) {
		return nodeError(ErrNodeNotFound, src)
	}
	if !b.nodeExists(dst) {
		return nodeError(ErrNodeNotFound, dst)
	}
	if srcOut < 0 || srcOut >= b.nodes[src].OutputCount() {
		return portError(ErrPortOutOfRange, src, srcOut)
	}
	if dstIn < 0 || dstIn >= b.nodes[dst].InputCount() {
		return portError(ErrPortOutOfRange, dst, dstIn)
	}
	for _, c := range b.connections {
		if c.src == src && c.srcOut == srcOut && c.dst == dst && c.dstIn == dstIn {
			return nodeError(ErrDuplicateConnection, dst)
		}
	}
	if b.reachable(dst, src) {
		return nodeError(ErrCycleDetected, dst)
	}
	b.connections = append(b.connections, connection{src: src, srcOut: srcOut, dst: dst, dstIn: dstIn})
	b.adj[src] = append(b.adj[src], dst)
	return nil
}

// Modulate adds a modulation edge from src's modulation output to a named
// parameter target on dst. target is matched case-insensitively and
// trimmed against dst's ModulationTargets() (if dst implements
// ModulationTargetLister); an unrecognized name fails with
// ErrUnknownModulationTarget.
func (b *Builder[S]) Modulate(src NodeId, dst NodeId, target string) error {
	if !b.nodeExists(src) {
		return nodeError(ErrNodeNotFound, src)
	}
	if !b.nodeExists(dst) {
		return nodeError(ErrNodeNotFound, dst)
	}
	if len(b.nodes[src].ModulationOutputs()) == 0 {
		return targetError(ErrUnknownModulationTarget, src, target)
	}
	normalized := normalizeTargetName(target)
	lister, ok := b.nodes[dst].(ModulationTargetLister)
	if !ok {
		return targetError(ErrUnknownModulationTarget, dst, target)
	}
	found := false
	for _, t := range lister.ModulationTargets() {
		if normalizeTargetName(t) == normalized {
			found = true
			break
		}
	}
	if !found {
		return targetError(ErrUnknownModulationTarget, dst, target)
	}
	if b.reachable(dst, src) {
		return nodeError(ErrCycleDetected, dst)
	}
	b.modEdges = append(b.modEdges, modulationEdge{src: src, dst: dst, target: normalized})
	b.adj[src] = append(b.adj[src], dst)
	return nil
}

// Build computes the evaluation order (a topological sort of the
// combined edge set, deterministic by insertion order among ties via
// Kahn's algorithm with a FIFO-ordered ready set) and seals the graph.
// Building with zero nodes, or with nodes that have no edges at all, is
// permitted -- such a graph simply produces silence.
func (b *Builder[S]) Build() (*Graph[S], error) {
	n := len(b.nodes)
	indegree := make([]int, n)
	for _, c := range b.connections {
		indegree[c.dst]++
	}
	for _, m := range b.modEdges {
		indegree[m.dst]++
	}

	// Kahn's algorithm, seeding the ready queue in insertion (NodeId)
	// order so ties break deterministically.
	ready := make([]NodeId, 0, n)
	for id := 0; id < n; id++ {
		if indegree[id] == 0 {
			ready = append(ready, NodeId(id))
		}
	}
	order := make([]NodeId, 0, n)
	remainingIndeg := append([]int(nil), indegree...)
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		for _, next := range b.adj[id] {
			remainingIndeg[next]--
			if remainingIndeg[next] == 0 {
				ready = append(ready, next)
			}
		}
	}
	if len(order) != n {
		// The incremental reachability check at Connect/Modulate time
		// should make this unreachable; kept as a defensive invariant.
		return nil, fmt.Errorf("dspgraph: %w: evaluation order incomplete", ErrCycleDetected)
	}

	position := make([]int, n)
	for i, id := range order {
		position[id] = i
	}

	g := &Graph[S]{
		ctx:         b.ctx,
		nodes:       b.nodes,
		connections: b.connections,
		modEdges:    b.modEdges,
		order:       order,
		position:    position,
	}
	g.prepare()
	return g, nil
}
