package dspgraph

import "zikichombo.org/sound/freq"

// Context is the per-session configuration shared by every node in a
// graph. It is immutable for the lifetime of a graph run except for
// CurrentSample, which the scheduler advances by BlockSize after every
// ProcessBlock call. Nodes may read CurrentSample but must not write it.
type Context struct {
	SampleRate   freq.T
	BlockSize    int
	ChannelCount int
	CurrentSample uint64
}

// NewContext builds a Context for the given sample rate, block size and
// channel count. It does not validate its arguments, and NewBuilder does
// not validate the Context it is given either.
func NewContext(sampleRate freq.T, blockSize, channelCount int) Context {
	return Context{
		SampleRate:   sampleRate,
		BlockSize:    blockSize,
		ChannelCount: channelCount,
	}
}

// SampleRateHz returns the sample rate as a plain float64 number of
// samples per second, for blocks doing frequency/phase math.
func (c *Context) SampleRateHz() float64 {
	return float64(c.SampleRate) / float64(freq.Hertz)
}

// advance moves the monotonic sample counter forward by one block. Only
// the scheduler calls this, once per ProcessBlock.
func (c *Context) advance() {
	c.CurrentSample += uint64(c.BlockSize)
}
