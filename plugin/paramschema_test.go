package plugin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchemaYAML = `
params:
  - name: gain_db
    index: 0
    min: -60
    max: 30
    default: 0
  - name: pan
    index: 1
    min: -100
    max: 100
    default: 0
`

func TestParseParamSchemaIndexesByName(t *testing.T) {
	schema, err := ParseParamSchema([]byte(testSchemaYAML))
	require.NoError(t, err)
	require.Equal(t, 2, schema.Count())

	idx, ok := schema.Index("pan")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = schema.Index("missing")
	require.False(t, ok)
}

func TestDefaultsPopulatesFlatArray(t *testing.T) {
	schema, err := ParseParamSchema([]byte(testSchemaYAML))
	require.NoError(t, err)

	params := Defaults[float64](schema)
	require.Len(t, params, 2)
	require.Equal(t, 0.0, params[0])
	require.Equal(t, 0.0, params[1])
}

func TestSetWritesAtRegisteredIndex(t *testing.T) {
	schema, err := ParseParamSchema([]byte(testSchemaYAML))
	require.NoError(t, err)

	params := Defaults[float64](schema)
	require.True(t, schema.Set(params, "gain_db", -6))
	require.Equal(t, -6.0, params[0])

	require.False(t, schema.Set(params, "unknown", 1))
}

func TestParseParamSchemaRejectsInvalidYAML(t *testing.T) {
	_, err := ParseParamSchema([]byte("not: [valid"))
	require.Error(t, err)
}
