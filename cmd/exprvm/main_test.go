package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/exprvm"
)

func TestInputs(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(name, []byte("1 + 2\n\n  \nx * 3\n"), 0o644))

	srcs, err := inputs(name, []string{"4"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 + 2", "x * 3", "4"}, srcs)

	srcs, err = inputs(name, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 + 2\n\n  \nx * 3\n"}, srcs)

	_, err = inputs(filepath.Join(t.TempDir(), "missing"), nil, false)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	reg := exprvm.DefaultRegistry().AddVar("x", exprvm.Int(2))
	m := exprvm.NewMachine()
	for _, opt := range []bool{true, false} {
		v, err := run(m, reg, "pow(x, 3) + 1", false, false, opt)
		require.NoError(t, err)
		assert.Equal(t, exprvm.Int(9), v)
	}
	_, err := run(m, reg, "y", false, false, true)
	var ne *exprvm.NameError
	assert.ErrorAs(t, err, &ne)
	_, err = run(m, reg, "1 +", false, false, true)
	var ee *exprvm.EOFError
	assert.ErrorAs(t, err, &ee)
}

func TestParseGiven(t *testing.T) {
	d, err := parseGiven(" rate = 1 + 0.05 ")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"rate", "1 + 0.05"}, d)
	d, err = parseGiven("eq=x==1")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"eq", "x==1"}, d)
	for _, s := range []string{"rate", "=1", "rate="} {
		_, err := parseGiven(s)
		assert.ErrorContains(t, err, "name=expr", s)
	}
}

func TestWantColor(t *testing.T) {
	c, err := wantColor("always")
	require.NoError(t, err)
	assert.True(t, c)
	c, err = wantColor("never")
	require.NoError(t, err)
	assert.False(t, c)
	_, err = wantColor("sometimes")
	assert.Error(t, err)
}
