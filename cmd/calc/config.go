package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// settings is the shell configuration. Values come from the defaults, then
// the config file, then flags that were set explicitly.
type settings struct {
	Places  int32  `yaml:"places"`
	BigPow  bool   `yaml:"big_pow"`
	Prec    uint   `yaml:"prec"`
	Postfix bool   `yaml:"postfix"`
	Color   bool   `yaml:"color"`
	Prompt  string `yaml:"prompt"`
	Verbose bool   `yaml:"verbose"`
}

func defaultSettings() settings {
	return settings{
		Places: calc.DefaultPlaces,
		Prec:   128,
		Color:  true,
		Prompt: "> ",
	}
}

// configPath finds the config file. explicit reports whether the user named
// the file, in which case it must exist.
func configPath(flag string) (path string, explicit bool) {
	if flag != "" {
		return flag, true
	}
	if v := os.Getenv("CALC_CONFIG"); v != "" {
		return v, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "calc", "config.yaml"), false
}

// loadSettings reads the config file over the defaults.
func loadSettings(path string, explicit bool) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	return decodeSettings(f, s)
}

func decodeSettings(r io.Reader, s settings) (settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("parsing config: %w", err)
	}
	return s, nil
}

// applyFlags overrides settings with flags the user set.
func applyFlags(cmd *cobra.Command, s settings) settings {
	flags := cmd.Flags()
	if flags.Changed("places") {
		s.Places, _ = flags.GetInt32("places")
	}
	if flags.Changed("big-pow") {
		s.BigPow, _ = flags.GetBool("big-pow")
	}
	if flags.Changed("prec") {
		s.Prec, _ = flags.GetUint("prec")
	}
	if flags.Changed("postfix") {
		s.Postfix, _ = flags.GetBool("postfix")
	}
	if flags.Changed("no-color") {
		nc, _ := flags.GetBool("no-color")
		s.Color = !nc
	}
	if flags.Changed("verbose") {
		s.Verbose, _ = flags.GetBool("verbose")
	}
	return s
}

// options converts settings to calculator options.
func (s settings) options() []calc.Option {
	opts := []calc.Option{calc.Places(s.Places)}
	if s.BigPow {
		opts = append(opts, calc.BigPow(s.Prec))
	}
	return opts
}
