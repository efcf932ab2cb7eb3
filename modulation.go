package dspgraph

import "strings"

// ModulationMode describes how a resolved modulation sample combines with
// a parameter's own value. The spec's source material mixes both
// conventions across its blocks; this engine requires each modulation
// output to declare which one it is.
type ModulationMode int

const (
	// ModulationAdditive adds the modulation sample to the parameter's
	// base value. This is the default for absolute parameters such as
	// frequency.
	ModulationAdditive ModulationMode = iota
	// ModulationMultiplicative treats the modulation sample as a scale
	// factor applied to the parameter's base value. Blocks must opt
	// into this explicitly via ModulationOutput.Mode.
	ModulationMultiplicative
)

// ModulationOutput describes one block-rate control signal a node
// exposes for other nodes to read via a modulation edge.
type ModulationOutput struct {
	Name string
	Min  float64
	Max  float64
	Mode ModulationMode
}

// normalizeTargetName applies the spec's case-insensitive matching rule
// for modulation target names: lowercase, trimmed.
func normalizeTargetName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ModulationTargetLister is implemented optionally by nodes that accept
// modulation edges into one or more named parameters. Builder.Modulate
// normalizes both the caller's target name and every entry here before
// comparing, so "Frequency" and "frequency" refer to the same target.
// A node with no modulatable parameters need not implement this; every
// Modulate call against it then fails with ErrUnknownModulationTarget.
type ModulationTargetLister interface {
	ModulationTargets() []string
}
