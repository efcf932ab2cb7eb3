// Package iomodel defines the Reader and Writer collaborator contracts
// file-backed nodes consume, plus an in-memory implementation and a
// zikichombo.org/sound adapter. File codecs themselves are out of scope
// per the engine's spec; iomodel only defines and exercises the edges a
// codec would plug into.
package iomodel

import "zikichombo.org/dspgraph"

// Reader is consumed by file input blocks. ReadChannel returns a
// preloaded slice covering the entire channel; implementations are
// expected to load their backing data fully before the graph starts
// processing, since the audio thread must never block.
type Reader[S dspgraph.Sample] interface {
	SampleRate() int
	ChannelCount() int
	SampleCount() int
	ReadChannel(ch int) []S
}

// Writer is consumed by file output blocks. blocks.FileOutput logs
// WriteChannel errors as warnings rather than panicking, and returns
// Finalize's error to its own caller; Finalize must be idempotent.
type Writer[S dspgraph.Sample] interface {
	SampleRate() float64
	ChannelCount() int
	WriteChannel(ch int, samples []S) error
	Finalize() error
}
