package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
)

func TestDecodeSettings(t *testing.T) {
	src := `
places: 4
big_pow: true
prec: 256
postfix: true
color: false
prompt: "calc> "
`
	s, err := decodeSettings(strings.NewReader(src), defaultSettings())
	require.NoError(t, err)
	assert.Equal(t, settings{
		Places:  4,
		BigPow:  true,
		Prec:    256,
		Postfix: true,
		Color:   false,
		Prompt:  "calc> ",
	}, s)
}

func TestDecodeSettingsPartial(t *testing.T) {
	s, err := decodeSettings(strings.NewReader("places: 10\n"), defaultSettings())
	require.NoError(t, err)
	want := defaultSettings()
	want.Places = 10
	assert.Equal(t, want, s)

	s, err = decodeSettings(strings.NewReader(""), defaultSettings())
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), s)
}

func TestDecodeSettingsErrors(t *testing.T) {
	for _, src := range []string{"placez: 3\n", "prec: -1\n", "places: [1]\n"} {
		_, err := decodeSettings(strings.NewReader(src), defaultSettings())
		assert.Error(t, err, "decoding %q", src)
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()

	s, err := loadSettings(filepath.Join(dir, "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), s)

	_, err = loadSettings(filepath.Join(dir, "missing.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("places: 2\n"), 0o644))
	s, err = loadSettings(path, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, s.Places)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("CALC_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, explicit := configPath("/flag.yaml")
	assert.Equal(t, "/flag.yaml", p)
	assert.True(t, explicit)

	t.Setenv("CALC_CONFIG", "/env.yaml")
	p, explicit = configPath("")
	assert.Equal(t, "/env.yaml", p)
	assert.True(t, explicit)

	t.Setenv("CALC_CONFIG", "")
	_, explicit = configPath("")
	assert.False(t, explicit)
}

func TestSettingsOptions(t *testing.T) {
	s := defaultSettings()
	s.Places = 5
	c := calc.New(s.options()...)
	assert.EqualValues(t, 5, c.Places())
	r, err := c.Calculate("1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.33333", r.String())
}
