// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"strings"

	"github.com/numstat/numstat/stats"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

// settings holds the options shared by all commands. Values come from,
// in decreasing precedence, command-line flags, NUMSTAT_* environment
// variables, the config file and the flag defaults.
type settings struct {
	Population bool   `mapstructure:"population"`
	Closed     string `mapstructure:"closed"`
	Bins       int    `mapstructure:"bins"`
	Normalize  bool   `mapstructure:"normalize"`
	Sort       bool   `mapstructure:"sort"`
	Ascending  bool   `mapstructure:"ascending"`
	DropNA     bool   `mapstructure:"dropna"`
	Output     string `mapstructure:"output"`
	Verbose    bool   `mapstructure:"verbose"`
}

// loadSettings reads the settings for a command whose parsed flags are fs.
// A missing default config file is not an error; a missing file named
// with -config is.
func loadSettings(fs *pflag.FlagSet) (*settings, error) {
	v := viper.New()
	setDefaults(v)
	if err := v.BindPFlags(fs); err != nil {
		return nil, xerrors.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix("NUMSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("numstat")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/numstat")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, xerrors.Errorf("reading config: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, xerrors.Errorf("decoding config: %w", err)
	}
	if _, err := parseFormat(s.Output); err != nil {
		return nil, err
	}
	if _, err := stats.ParseSide(s.Closed); err != nil {
		return nil, err
	}
	return &s, nil
}

// setDefaults registers every key of settings, so that environment
// variables apply even to commands without the matching flag.
func setDefaults(v *viper.Viper) {
	v.SetDefault("population", false)
	v.SetDefault("closed", "left")
	v.SetDefault("bins", 0)
	v.SetDefault("normalize", false)
	v.SetDefault("sort", true)
	v.SetDefault("ascending", false)
	v.SetDefault("dropna", true)
	v.SetDefault("output", "text")
	v.SetDefault("verbose", false)
}

// options converts s to statistics options.
func (s *settings) options() []stats.Option {
	// loadSettings has validated Closed.
	closed, _ := stats.ParseSide(s.Closed)
	opts := []stats.Option{
		stats.Population(s.Population),
		stats.Closed(closed),
		stats.Normalize(s.Normalize),
		stats.Sort(s.Sort),
		stats.Ascending(s.Ascending),
		stats.DropNA(s.DropNA),
	}
	if s.Bins > 0 {
		opts = append(opts, stats.Bins(s.Bins))
	}
	return opts
}
