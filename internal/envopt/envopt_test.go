package envopt

import (
	"errors"
	"testing"

	"github.com/abhinav/huffstep/internal/envtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLoaderStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		env   *envtest.Env
		names []string // variables to request
		want  []string // values for those variables in-order
	}{
		{
			desc: "empty",
			env:  &envtest.Empty,
			want: []string{},
		},
		{
			desc:  "unset",
			env:   &envtest.Empty,
			names: []string{"FOO"},
			want:  []string{"default"},
		},
		{
			desc:  "simple values",
			env:   envtest.MustPairs("FOO", "bar", "BAZ", "qux"),
			names: []string{"FOO", "BAZ"},
			want:  []string{"bar", "qux"},
		},
		{
			desc:  "unquote/single quote",
			env:   envtest.MustPairs("SPLIT", "'g'"),
			names: []string{"SPLIT"},
			want:  []string{"g"},
		},
		{
			desc:  "unquote/double quote",
			env:   envtest.MustPairs("OPTS", `"-mode step"`),
			names: []string{"OPTS"},
			want:  []string{"-mode step"},
		},
		{
			desc:  "unquote/invalid",
			env:   envtest.MustPairs("OPTS", `"oops`),
			names: []string{"OPTS"},
			want:  []string{`"oops`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			loader := Loader{Getenv: tt.env.Getenv}
			got := make([]string, len(tt.names))
			for i, name := range tt.names {
				got[i] = "default"
				loader.StringVar(&got[i], name)
			}

			require.NoError(t, loader.Load())
			assert.Equal(t, tt.want, got)
		})
	}
}

type failingValue struct{ err error }

func (v failingValue) Set(string) error { return v.err }

func TestLoaderErrors(t *testing.T) {
	t.Parallel()

	var mode string
	loader := Loader{
		Getenv: envtest.MustPairs(
			"A", "1",
			"B", "2",
			"C", "3",
		).Getenv,
	}
	loader.Var(failingValue{errors.New("great sadness")}, "A")
	loader.StringVar(&mode, "B")
	loader.Var(failingValue{errors.New("bad value")}, "C")

	err := loader.Load()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.ErrorContains(t, err, "load $A: great sadness")
	assert.ErrorContains(t, err, "load $C: bad value")
	assert.Equal(t, "2", mode, "other values must still load")
}

func TestLoaderNoVars(t *testing.T) {
	t.Parallel()

	var loader Loader
	assert.NoError(t, loader.Load())
}
