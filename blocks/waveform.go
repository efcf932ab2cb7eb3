package blocks

import "math"

// Waveform selects the periodic function an Oscillator or LFO samples.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
	Pulse
	Noise
)

const (
	twoPi    = 2 * math.Pi
	invTwoPi = 1 / twoPi
)

// sample evaluates waveform at the given phase (radians) and, for Pulse,
// duty cycle. rng supplies Noise samples and may be nil for every other
// waveform.
func sample(waveform Waveform, phase, dutyCycle float64, rng *xorShiftRng) float64 {
	switch waveform {
	case Sine:
		return math.Sin(phase)
	case Square:
		if math.Mod(phase, twoPi) < math.Pi {
			return 1
		}
		return -1
	case Sawtooth:
		n := math.Mod(phase, twoPi) * invTwoPi
		return 2*n - 1
	case Triangle:
		n := math.Mod(phase, twoPi) * invTwoPi
		if n < 0.5 {
			return 4*n - 1
		}
		return 3 - 4*n
	case Pulse:
		n := math.Mod(phase, twoPi) * invTwoPi
		if n < dutyCycle {
			return 1
		}
		return -1
	case Noise:
		return rng.next()
	default:
		return 0
	}
}

// defaultDutyCycle is used by callers that never configure Pulse width
// explicitly.
const defaultDutyCycle = 0.5

// xorShiftRng is a minimal xorshift64 generator, good enough for a Noise
// waveform's audio-rate jitter without pulling in a full PRNG library.
type xorShiftRng struct {
	state uint64
}

func newXorShiftRng(seed uint64) *xorShiftRng {
	if seed == 0 {
		seed = 1
	}
	return &xorShiftRng{state: seed}
}

// next returns a uniform sample in [-1, 1].
func (r *xorShiftRng) next() float64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return (float64(r.state)/float64(math.MaxUint64))*2 - 1
}
