package plugin

import (
	"github.com/charmbracelet/log"

	"zikichombo.org/dspgraph"
	"zikichombo.org/sound/freq"
)

// Handle wraps a Dsp implementation with a prepared flag and the session
// context it was last prepared for, giving a host (FFI boundary, plugin
// wrapper) a single stable type to hold regardless of which Dsp it
// carries. It mirrors the opaque handle a C-facing plugin boundary would
// expose, minus the actual FFI marshaling.
type Handle[S dspgraph.Sample] struct {
	dsp       Dsp[S]
	ctx       dspgraph.Context
	prepared  bool
	destroyed bool
}

// New wraps dsp, unprepared, at a default 44.1kHz/512/2ch configuration
// until Prepare is called.
func New[S dspgraph.Sample](dsp Dsp[S]) *Handle[S] {
	return &Handle[S]{
		dsp: dsp,
		ctx: dspgraph.NewContext(44100*freq.Hertz, 512, 2),
	}
}

// Prepare (re)configures the wrapped Dsp for the given session
// parameters, resets its feedback state and marks the handle prepared.
// Idempotent: calling it again with new parameters simply reconfigures
// and re-resets.
func (h *Handle[S]) Prepare(sampleRate freq.T, blockSize, channelCount int) {
	if h.destroyed {
		log.Warn("plugin: Prepare called on destroyed handle")
		return
	}
	h.ctx = dspgraph.NewContext(sampleRate, blockSize, channelCount)
	h.dsp.Prepare(h.ctx)
	h.dsp.Reset()
	h.prepared = true
}

// Reset clears the wrapped Dsp's feedback state without altering
// configuration.
func (h *Handle[S]) Reset() {
	if h.destroyed {
		log.Warn("plugin: Reset called on destroyed handle")
		return
	}
	h.dsp.Reset()
}

// ApplyParameters forwards a flat parameter array to the wrapped Dsp.
func (h *Handle[S]) ApplyParameters(params []S) {
	if h.destroyed {
		log.Warn("plugin: ApplyParameters called on destroyed handle")
		return
	}
	h.dsp.ApplyParameters(params)
}

// Process runs one block of audio through the wrapped Dsp. Calling
// Process before Prepare runs the Dsp at the handle's default
// configuration; most hosts will call Prepare first once real session
// parameters are known.
func (h *Handle[S]) Process(inputs, outputs [][]S) {
	if h.destroyed {
		log.Warn("plugin: Process called on destroyed handle")
		return
	}
	h.dsp.Process(inputs, outputs, &h.ctx)
}

// Prepared reports whether Prepare has been called since construction.
func (h *Handle[S]) Prepared() bool { return h.prepared }

// Destroy marks the handle unusable. Go is garbage collected, so this
// drops no resources itself; it exists for API-shape parity with the
// spec's C-boundary lifecycle, where Destroy frees the opaque pointer.
// Every other method becomes a logged no-op afterward; Destroy itself is
// idempotent.
func (h *Handle[S]) Destroy() {
	h.destroyed = true
}
