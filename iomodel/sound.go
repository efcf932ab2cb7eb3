package iomodel

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"zikichombo.org/dspgraph"
	"zikichombo.org/sound"
)

// drainChunk is how many frames SoundReader pulls from a
// sound.Source per Receive call while preloading it into memory.
const drainChunk = 4096

// SoundReader adapts a zikichombo.org/sound Source into a Reader by
// draining it fully into memory at construction time, matching the
// Reader contract's "preloaded slice of the entire channel" guarantee --
// the teacher's sound.Source is a streaming pull interface and cannot
// satisfy that contract directly.
type SoundReader[S dspgraph.Sample] struct {
	sampleRate int
	channels   [][]S
}

// NewSoundReader reads src to exhaustion (io.EOF or a zero-progress
// Receive) and returns a Reader over the fully materialized channels.
// Errors other than end-of-stream are logged as warnings; whatever was
// read before the error is kept.
func NewSoundReader[S dspgraph.Sample](src sound.Source) *SoundReader[S] {
	nc := src.Channels()
	channels := make([][]S, nc)
	buf := make([]float64, drainChunk*nc)
	for {
		n, err := src.Receive(buf)
		if n > 0 {
			for ch := 0; ch < nc; ch++ {
				start := ch * n
				for i := 0; i < n; i++ {
					channels[ch] = append(channels[ch], S(buf[start+i]))
				}
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn("iomodel: sound source read stopped early", "err", err)
			}
			break
		}
		if n == 0 {
			break
		}
	}
	_ = src.Close()
	return &SoundReader[S]{sampleRate: int(src.SampleRate()), channels: channels}
}

func (r *SoundReader[S]) SampleRate() int   { return r.sampleRate }
func (r *SoundReader[S]) ChannelCount() int { return len(r.channels) }
func (r *SoundReader[S]) SampleCount() int {
	if len(r.channels) == 0 {
		return 0
	}
	return len(r.channels[0])
}
func (r *SoundReader[S]) ReadChannel(ch int) []S { return r.channels[ch] }

// SoundWriter adapts a zikichombo.org/sound Sink into a Writer, buffering
// every WriteChannel call in memory and flushing it through Send on
// Finalize -- the inverse of SoundReader's preload strategy, since a
// Sink takes every channel of a block in one Send call, not one channel
// at a time.
type SoundWriter[S dspgraph.Sample] struct {
	sink       sound.Sink
	sampleRate float64
	channels   [][]S
	finalized  bool
}

// NewSoundWriter wraps sink, which must accept channelCount channels at
// sampleRate.
func NewSoundWriter[S dspgraph.Sample](sink sound.Sink, sampleRate float64, channelCount int) *SoundWriter[S] {
	return &SoundWriter[S]{sink: sink, sampleRate: sampleRate, channels: make([][]S, channelCount)}
}

func (w *SoundWriter[S]) SampleRate() float64 { return w.sampleRate }
func (w *SoundWriter[S]) ChannelCount() int    { return len(w.channels) }

func (w *SoundWriter[S]) WriteChannel(ch int, samples []S) error {
	w.channels[ch] = append(w.channels[ch], samples...)
	return nil
}

// Finalize packs every buffered channel into one channel-major []float64
// (the teacher's own Block.Samples layout: channel 0's frames, then
// channel 1's, ...) and sends it through the sink in one call, then
// closes the sink. It is idempotent: the second and subsequent calls
// return nil without touching the sink again.
func (w *SoundWriter[S]) Finalize() error {
	if w.finalized {
		return nil
	}
	w.finalized = true
	nc := len(w.channels)
	if nc == 0 {
		return w.sink.Close()
	}
	frames := len(w.channels[0])
	packed := make([]float64, nc*frames)
	for ch := 0; ch < nc; ch++ {
		start := ch * frames
		for i, v := range w.channels[ch] {
			packed[start+i] = float64(v)
		}
	}
	if err := w.sink.Send(packed); err != nil {
		log.Warn("iomodel: sound sink send failed", "err", err)
		return err
	}
	return w.sink.Close()
}
