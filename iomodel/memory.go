package iomodel

import "zikichombo.org/dspgraph"

// MemoryReader is a Reader backed by channel slices already resident in
// memory -- the minimum needed to exercise blocks.FileInput in tests
// without a real file codec.
type MemoryReader[S dspgraph.Sample] struct {
	sampleRate int
	channels   [][]S
}

// NewMemoryReader wraps channels (one slice per channel, all the same
// length) as a Reader at the given sample rate.
func NewMemoryReader[S dspgraph.Sample](sampleRate int, channels [][]S) *MemoryReader[S] {
	return &MemoryReader[S]{sampleRate: sampleRate, channels: channels}
}

func (r *MemoryReader[S]) SampleRate() int   { return r.sampleRate }
func (r *MemoryReader[S]) ChannelCount() int { return len(r.channels) }
func (r *MemoryReader[S]) SampleCount() int {
	if len(r.channels) == 0 {
		return 0
	}
	return len(r.channels[0])
}
func (r *MemoryReader[S]) ReadChannel(ch int) []S { return r.channels[ch] }

// MemoryWriter is a Writer that accumulates every WriteChannel call into
// in-memory per-channel slices, retrievable via Channel after Finalize.
type MemoryWriter[S dspgraph.Sample] struct {
	sampleRate float64
	channels   [][]S
	finalized  bool
}

// NewMemoryWriter creates a Writer for channelCount channels at
// sampleRate.
func NewMemoryWriter[S dspgraph.Sample](sampleRate float64, channelCount int) *MemoryWriter[S] {
	return &MemoryWriter[S]{sampleRate: sampleRate, channels: make([][]S, channelCount)}
}

func (w *MemoryWriter[S]) SampleRate() float64 { return w.sampleRate }
func (w *MemoryWriter[S]) ChannelCount() int    { return len(w.channels) }

func (w *MemoryWriter[S]) WriteChannel(ch int, samples []S) error {
	w.channels[ch] = append(w.channels[ch], samples...)
	return nil
}

// Finalize is idempotent: calling it any number of times after the first
// has no further effect and never errors.
func (w *MemoryWriter[S]) Finalize() error {
	w.finalized = true
	return nil
}

// Channel returns everything written to channel ch so far.
func (w *MemoryWriter[S]) Channel(ch int) []S { return w.channels[ch] }
