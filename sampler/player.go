package sampler

import (
	"sync/atomic"

	"zikichombo.org/dspgraph"
)

// Backend receives a Signal and is responsible for pushing its samples
// to an audio output device or sink. Implementations typically move
// signal into a background goroutine, since Play is expected to return
// once playback has started rather than once it has finished.
type Backend[S dspgraph.Sample] interface {
	Play(signal *Signal[S], stopped *atomic.Bool) error
}

// PlayHandle lets a caller stop playback started by Player.Play.
type PlayHandle struct {
	stopped *atomic.Bool
}

// Stop signals the running Signal to halt on its next Next call.
func (h *PlayHandle) Stop() { h.stopped.Store(true) }

// Stopped reports whether Stop has been called.
func (h *PlayHandle) Stopped() bool { return h.stopped.Load() }

// Player drives a graph through a Backend.
type Player[S dspgraph.Sample] struct {
	graph        *dspgraph.Graph[S]
	outputNodeID dspgraph.NodeId
	channels     int
	backend      Backend[S]
}

// NewPlayer creates a Player for graph, reading output from
// outputNodeID's channels through backend.
func NewPlayer[S dspgraph.Sample](graph *dspgraph.Graph[S], outputNodeID dspgraph.NodeId, channels int, backend Backend[S]) *Player[S] {
	return &Player[S]{graph: graph, outputNodeID: outputNodeID, channels: channels, backend: backend}
}

// Play starts non-blocking playback and returns a handle that stops it.
func (p *Player[S]) Play() (*PlayHandle, error) {
	stopped := &atomic.Bool{}
	signal := NewSignal(p.graph, p.outputNodeID, p.channels, stopped)

	if err := p.backend.Play(signal, stopped); err != nil {
		return nil, err
	}

	return &PlayHandle{stopped: stopped}, nil
}
