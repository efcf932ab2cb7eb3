// Package plugin provides an opaque-handle lifecycle (Prepare / Reset /
// ApplyParameters / Process / Destroy) for embedding a dspgraph-based DSP
// chain behind a stable host boundary, plus a YAML-defined flat
// parameter-array schema for mapping named host parameters onto it.
package plugin

import "zikichombo.org/dspgraph"

// Dsp is implemented by a consumer's plugin-specific processing chain.
// A host wraps one in a Handle to get the Prepare/Reset/ApplyParameters
// lifecycle around it.
type Dsp[S dspgraph.Sample] interface {
	// Prepare (re)configures the chain for the given session parameters.
	// Called whenever sample rate, block size or channel count changes.
	Prepare(ctx dspgraph.Context)

	// Reset clears filter histories, oscillator phases and any other
	// feedback-carrying state, without altering configuration.
	Reset()

	// ApplyParameters maps a flat parameter array (indices defined by a
	// ParamSchema) onto the chain's fields.
	ApplyParameters(params []S)

	// Process runs one block of audio through the chain.
	Process(inputs, outputs [][]S, ctx *dspgraph.Context)
}
