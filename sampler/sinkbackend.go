package sampler

import (
	"sync/atomic"

	"zikichombo.org/sound"

	"zikichombo.org/dspgraph"
)

// SinkBackend drains a Signal into a sound.Sink in fixed-size chunks of
// interleaved samples, on a goroutine that Play starts.
type SinkBackend[S dspgraph.Sample] struct {
	sink      sound.Sink
	chunkSize int
}

// NewSinkBackend creates a SinkBackend writing chunkSize-frame chunks
// (a "frame" being one sample per channel) to sink.
func NewSinkBackend[S dspgraph.Sample](sink sound.Sink, chunkSize int) *SinkBackend[S] {
	if chunkSize <= 0 {
		chunkSize = 4096
	}
	return &SinkBackend[S]{sink: sink, chunkSize: chunkSize}
}

// Play spawns a goroutine that drains signal into the sink, chunk by
// chunk, until Next reports the signal stopped, then closes the sink.
// Play itself returns immediately, matching Backend's non-blocking
// contract.
func (b *SinkBackend[S]) Play(signal *Signal[S], stopped *atomic.Bool) error {
	go b.drain(signal)
	return nil
}

func (b *SinkBackend[S]) drain(signal *Signal[S]) {
	channels := signal.ChannelCount()
	chunk := make([]float64, b.chunkSize*channels)

	for {
		n := 0
		for n < len(chunk) {
			v, ok := signal.Next()
			if !ok {
				if n > 0 {
					_ = b.sink.Send(chunk[:n])
				}
				_ = b.sink.Close()
				return
			}
			chunk[n] = float64(v)
			n++
		}
		if err := b.sink.Send(chunk); err != nil {
			_ = b.sink.Close()
			return
		}
	}
}
