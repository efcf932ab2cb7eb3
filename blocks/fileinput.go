package blocks

import (
	"zikichombo.org/dspgraph"
	"zikichombo.org/dspgraph/iomodel"
)

// FileInput is a zero-input generator pulling from a preloaded
// iomodel.Reader, one output per file channel. It never performs I/O on
// the audio thread: the Reader is expected to have its data fully
// resident in memory before the graph starts processing.
type FileInput[S dspgraph.Sample] struct {
	reader      iomodel.Reader[S]
	currentPos  int
	LoopEnabled bool
}

// NewFileInput wraps reader for playback from position zero.
func NewFileInput[S dspgraph.Sample](reader iomodel.Reader[S]) *FileInput[S] {
	return &FileInput[S]{reader: reader}
}

// IsFinished reports whether every sample in the reader has been
// consumed (always false once LoopEnabled is set).
func (f *FileInput[S]) IsFinished() bool {
	return !f.LoopEnabled && f.currentPos >= f.reader.SampleCount()
}

func (f *FileInput[S]) advance(n int) {
	f.currentPos += n
	if f.LoopEnabled {
		total := f.reader.SampleCount()
		if total > 0 && f.currentPos >= total {
			f.currentPos %= total
		}
	}
}

func (f *FileInput[S]) Process(_ [][]S, outputs [][]S, _ []S, ctx *dspgraph.Context) {
	numFileChannels := f.reader.ChannelCount()
	total := f.reader.SampleCount()

	for ch := 0; ch < len(outputs); ch++ {
		out := outputs[ch]
		if ch >= numFileChannels {
			for i := range out {
				out[i] = 0
			}
			continue
		}
		in := f.reader.ReadChannel(ch)
		for i := range out {
			pos := f.currentPos + i
			switch {
			case pos < total:
				out[i] = in[pos]
			case f.LoopEnabled && total > 0:
				out[i] = in[pos%total]
			default:
				out[i] = 0
			}
		}
	}

	f.advance(ctx.BlockSize)
}

func (f *FileInput[S]) InputCount() int  { return 0 }
func (f *FileInput[S]) OutputCount() int { return f.reader.ChannelCount() }
func (f *FileInput[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }
