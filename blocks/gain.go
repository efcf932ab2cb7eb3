package blocks

import (
	"math"

	"zikichombo.org/dspgraph"
)

// Gain multiplies every input channel by a linear gain derived from
// LevelDb, 10^(dB/20). Channels is fixed at construction and equals both
// InputCount and OutputCount.
type Gain[S dspgraph.Sample] struct {
	LevelDb dspgraph.Parameter[S]

	channels int
}

// NewGain creates a Gain stage for the given channel count and initial
// level in decibels.
func NewGain[S dspgraph.Sample](channels int, levelDb S) *Gain[S] {
	return &Gain[S]{LevelDb: dspgraph.Constant(levelDb), channels: channels}
}

// UnityGain creates a 0 dB Gain stage, a convenient default for tests and
// simple chains.
func UnityGain[S dspgraph.Sample](channels int) *Gain[S] {
	return NewGain[S](channels, 0)
}

func dbToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

func (g *Gain[S]) Process(inputs, outputs [][]S, mod []S, _ *dspgraph.Context) {
	linear := S(dbToLinear(float64(g.LevelDb.Resolve(mod))))
	for ch := 0; ch < g.channels; ch++ {
		in, out := inputs[ch], outputs[ch]
		for i, v := range in {
			out[i] = v * linear
		}
	}
}

func (g *Gain[S]) InputCount() int                       { return g.channels }
func (g *Gain[S]) OutputCount() int                       { return g.channels }
func (g *Gain[S]) ModulationOutputs() []dspgraph.ModulationOutput { return nil }

func (g *Gain[S]) ModulationTargets() []string { return []string{"level_db"} }

func (g *Gain[S]) SetParam(target string, value S) {
	if target == "level_db" {
		g.LevelDb.Base = value
	}
}
