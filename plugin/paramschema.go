package plugin

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParamDef describes one entry of a flat parameter array: a logical
// name, its index in the array, its valid range and its default value.
type ParamDef struct {
	Name    string  `yaml:"name"`
	Index   int     `yaml:"index"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Default float64 `yaml:"default"`
}

// ParamSchema maps logical parameter names onto indices of a flat array,
// the shape a host's parameter-automation layer passes across the
// Handle.ApplyParameters boundary. It is loaded from YAML rather than
// generated at build time the way the original parameters.json/codegen
// pipeline did, since a Go plugin host has no equivalent build step.
type ParamSchema struct {
	byName  map[string]ParamDef
	ordered []ParamDef
}

// ParseParamSchema parses a YAML document of the form:
//
//	params:
//	  - name: gain_db
//	    index: 0
//	    min: -60
//	    max: 30
//	    default: 0
func ParseParamSchema(data []byte) (*ParamSchema, error) {
	var doc struct {
		Params []ParamDef `yaml:"params"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dspgraph/plugin: parse param schema: %w", err)
	}

	schema := &ParamSchema{byName: make(map[string]ParamDef, len(doc.Params)), ordered: doc.Params}
	for _, p := range doc.Params {
		schema.byName[p.Name] = p
	}
	return schema, nil
}

// Count reports the flat array's required length.
func (s *ParamSchema) Count() int { return len(s.ordered) }

// Index returns the flat-array index for name, or false if name is
// unknown.
func (s *ParamSchema) Index(name string) (int, bool) {
	p, ok := s.byName[name]
	return p.Index, ok
}

// Defaults returns a freshly allocated flat array populated with every
// parameter's Default, ready to pass to Handle.ApplyParameters before
// any host-side overrides are applied.
func Defaults[S ~float32 | ~float64](s *ParamSchema) []S {
	out := make([]S, s.Count())
	for _, p := range s.ordered {
		if p.Index >= 0 && p.Index < len(out) {
			out[p.Index] = S(p.Default)
		}
	}
	return out
}

// Set writes value into params at the index registered for name. It
// reports false if name is unknown or the index falls outside params.
func (s *ParamSchema) Set(params []float64, name string, value float64) bool {
	idx, ok := s.Index(name)
	if !ok || idx < 0 || idx >= len(params) {
		return false
	}
	params[idx] = value
	return true
}
