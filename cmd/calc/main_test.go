package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
)

// execute runs the root command with a config file that does not exist, so
// that the user's configuration does not leak into tests.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CALC_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	var out, errs bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootOneShot(t *testing.T) {
	out, err := execute(t, "", "2", "^", "3", "+", "10")
	require.NoError(t, err)
	assert.Equal(t, "18\n", out)

	out, err = execute(t, "", "--", "-5+3")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)

	out, err = execute(t, "", "--places", "2", "2/3")
	require.NoError(t, err)
	assert.Equal(t, "0.67\n", out)
}

func TestRootOneShotError(t *testing.T) {
	_, err := execute(t, "", "(1+2")
	require.Error(t, err)
	assert.ErrorIs(t, err, calc.ErrUnmatchedOpen)

	_, err = execute(t, "", "1/0")
	assert.ErrorIs(t, err, calc.ErrDivisionByZero)
}

func TestRootREPL(t *testing.T) {
	out, err := execute(t, "1 + 5 * (-6/3)\n1+\nexit\n", "--no-color", "--postfix")
	require.NoError(t, err)
	assert.Equal(t, "postfix: 1 5 0 6 - 3 / * +\n-9\npostfix: 1 +\nError: not enough operands for operator +\n", out)
}

func TestRootConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("places: 1\ncolor: false\n"), 0o644))
	out, err := execute(t, "2/3\n", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "0.7\n", out)

	out, err = execute(t, "2/3\n", "--config", path, "--places", "4")
	require.NoError(t, err)
	assert.Equal(t, "0.6667\n", out)

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "1")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
