package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enumerable "github.com/yaorb/node-enumerable"
)

func compile(t *testing.T, doc string) *Pipeline {
	t.Helper()
	spec, err := Load([]byte(doc))
	require.NoError(t, err)
	p, err := Compile(spec)
	require.NoError(t, err)
	return p
}

func run(t *testing.T, doc string, src any) []any {
	t.Helper()
	out, err := compile(t, doc).Apply(enumerable.From(src)).ToGoSlice()
	require.NoError(t, err)
	return out
}

func Test_Pipeline_WhereSelect(t *testing.T) {
	doc := `
steps:
  - op: where
    field: age
    cmp: ge
    value: 18
  - op: select
    field: name
`
	src := []any{
		map[string]any{"name": "ann", "age": 34},
		map[string]any{"name": "kid", "age": 7},
		map[string]any{"name": "rex", "age": 18},
	}
	assert.Equal(t, []any{"ann", "rex"}, run(t, doc, src))
}

func Test_Pipeline_SkipTakeDistinct(t *testing.T) {
	doc := `
steps:
  - op: distinct
  - op: skip
    n: 1
  - op: take
    n: 2
`
	assert.Equal(t, []any{int64(2), int64(3)}, run(t, doc, []int{1, 1, 2, 3, 3, 4}))
}

func Test_Pipeline_OrderBy(t *testing.T) {
	doc := `
steps:
  - op: orderBy
    field: k
    dir: desc
  - op: select
    field: k
`
	src := []any{
		map[string]any{"k": 1},
		map[string]any{"k": 3},
		map[string]any{"k": 2},
	}
	assert.Equal(t, []any{int64(3), int64(2), int64(1)}, run(t, doc, src))
}

func Test_Pipeline_CastAndMath(t *testing.T) {
	doc := `
steps:
  - op: cast
    type: float
  - op: abs
  - op: ceil
`
	assert.Equal(t, []any{2.0, 2.0}, run(t, doc, []string{"-1.5", "1.2"}))
}

func Test_Pipeline_ReverseChunkFlatten(t *testing.T) {
	doc := `
steps:
  - op: reverse
  - op: chunk
    n: 2
  - op: flatten
`
	assert.Equal(t, []any{int64(3), int64(2), int64(1)}, run(t, doc, []int{1, 2, 3}))
}

func Test_Pipeline_CompileErrors(t *testing.T) {
	cases := map[string]string{
		"unknown op":      "steps:\n  - op: frobnicate\n",
		"missing op":      "steps:\n  - n: 3\n",
		"select no field": "steps:\n  - op: select\n",
		"cast no type":    "steps:\n  - op: cast\n",
		"bad dir":         "steps:\n  - op: orderBy\n    dir: sideways\n",
		"bad cmp":         "steps:\n  - op: where\n    cmp: near\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			spec, err := Load([]byte(doc))
			require.NoError(t, err)
			_, err = Compile(spec)
			assert.Error(t, err)
		})
	}
}

func Test_Pipeline_LoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("steps: [unterminated"))
	assert.Error(t, err)
}

func Test_Pipeline_EmptySpecIsIdentity(t *testing.T) {
	assert.Equal(t, []any{int64(1), int64(2)}, run(t, "steps: []\n", []int{1, 2}))
}
