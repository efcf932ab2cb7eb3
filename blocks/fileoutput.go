package blocks

import (
	"github.com/charmbracelet/log"

	"zikichombo.org/dspgraph"
	"zikichombo.org/dspgraph/iomodel"
)

// FileOutput is an N-input, N-output passthrough: every input channel is
// copied to the matching output channel so the node can sit mid-graph,
// and also forwarded to an iomodel.Writer so the signal is captured to
// its backing destination. Writer errors are logged, not propagated --
// the audio thread must never be made to fail a block over an I/O error.
type FileOutput[S dspgraph.Sample] struct {
	writer   iomodel.Writer[S]
	channels int
}

// NewFileOutput creates a FileOutput forwarding to writer, which must
// report ChannelCount() == channels.
func NewFileOutput[S dspgraph.Sample](writer iomodel.Writer[S], channels int) *FileOutput[S] {
	return &FileOutput[S]{writer: writer, channels: channels}
}

func (f *FileOutput[S]) Process(inputs, outputs [][]S, _ []S, _ *dspgraph.Context) {
	for ch, in := range inputs {
		copy(outputs[ch], in)
		if err := f.writer.WriteChannel(ch, in); err != nil {
			log.Warn("fileoutput: write channel failed", "channel", ch, "err", err)
		}
	}
}

// Finalize flushes the underlying writer. Callers drive this once after
// the last ProcessBlock, mirroring iomodel.Writer's own idempotence
// contract.
func (f *FileOutput[S]) Finalize() error {
	return f.writer.Finalize()
}

func (f *FileOutput[S]) InputCount() int                              { return f.channels }
func (f *FileOutput[S]) OutputCount() int                             { return f.channels }
func (f *FileOutput[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }
