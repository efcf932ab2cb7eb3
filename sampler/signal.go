// Package sampler turns a built dspgraph.Graph into a pull-based,
// interleaved sample stream suitable for handing to an audio backend,
// and a minimal non-blocking Player on top of it.
package sampler

import (
	"sync/atomic"

	"zikichombo.org/dspgraph"
)

// Signal pulls interleaved samples (L, R, L, R, ...) out of a graph one
// at a time, refilling its internal per-channel buffers with a fresh
// ProcessBlock call whenever the previous block has been fully drained.
type Signal[S dspgraph.Sample] struct {
	graph        *dspgraph.Graph[S]
	outputNodeID dspgraph.NodeId
	channels     int
	blockSize    int

	channelIndex int
	sampleIndex  int
	stopped      *atomic.Bool
}

// NewSignal wraps graph as a Signal reading from outputNodeID's first
// channels outputs. stopped, if non-nil, is checked by Next and
// lets a caller halt iteration from another goroutine; pass nil to
// iterate until the caller simply stops calling Next.
func NewSignal[S dspgraph.Sample](graph *dspgraph.Graph[S], outputNodeID dspgraph.NodeId, channels int, stopped *atomic.Bool) *Signal[S] {
	ctx := graph.Context()
	return &Signal[S]{
		graph:        graph,
		outputNodeID: outputNodeID,
		channels:     channels,
		blockSize:    ctx.BlockSize,
		stopped:      stopped,
	}
}

// SampleRate reports the graph's configured sample rate in Hz.
func (s *Signal[S]) SampleRate() float64 { return s.graph.Context().SampleRateHz() }

// ChannelCount reports the number of interleaved channels Next cycles
// through.
func (s *Signal[S]) ChannelCount() int { return s.channels }

func (s *Signal[S]) refill() {
	s.graph.ProcessBlock()
}

// Next returns the next interleaved sample and true, or the zero value
// and false once the stop flag (if any) has been set.
func (s *Signal[S]) Next() (S, bool) {
	if s.stopped != nil && s.stopped.Load() {
		var zero S
		return zero, false
	}

	if s.channelIndex == 0 && s.sampleIndex == 0 {
		s.refill()
	}

	out := s.graph.OutputOf(s.outputNodeID, s.channelIndex)
	var value S
	if s.sampleIndex < len(out) {
		value = out[s.sampleIndex]
	}

	s.channelIndex++
	if s.channelIndex >= s.channels {
		s.channelIndex = 0
		s.sampleIndex++
		s.sampleIndex %= s.blockSize
	}

	return value, true
}
