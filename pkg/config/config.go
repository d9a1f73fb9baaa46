// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-intpoly/pkg/poly"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a configuration file.
type Format uint

const (
	// TOML configuration syntax (the default).
	TOML Format = iota
	// YAML configuration syntax.
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	//
	return "toml"
}

// Polynomial text syntaxes understood by the command-line tool.
const (
	// PAIRS is the sentinel-terminated "coefficient exponent" list.
	PAIRS = "pairs"
	// TERMS is the human-readable sum of terms (e.g. " +2x^2 -1x +5").
	TERMS = "terms"
)

// Config holds the settings of the command-line tool.
type Config struct {
	// LogLevel is any level name understood by logrus.
	LogLevel string       `toml:"loglevel" yaml:"loglevel"`
	Input    InputConfig  `toml:"input" yaml:"input"`
	Output   OutputConfig `toml:"output" yaml:"output"`
}

// InputConfig determines how polynomials are read.
type InputConfig struct {
	Format      string `toml:"format" yaml:"format"`
	Strict      bool   `toml:"strict" yaml:"strict"`
	MaxExponent int    `toml:"max_exponent" yaml:"max_exponent"`
}

// OutputConfig determines how polynomials are written.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: log.InfoLevel.String(),
		Input: InputConfig{
			Format:      PAIRS,
			Strict:      false,
			MaxExponent: poly.DefaultMaxExponent,
		},
		Output: OutputConfig{
			Format: TERMS,
		},
	}
}

// Load reads a configuration file, choosing the syntax from its extension
// (".yaml" or ".yml" for YAML, otherwise TOML).  Settings missing from the file
// keep their default values.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", filename)
	}
	//
	cfg, err := Parse(data, DetectFormat(filename))
	if err != nil {
		return nil, errors.Wrapf(err, "loading config file %s", filename)
	}
	//
	return cfg, nil
}

// DetectFormat determines the configuration syntax from a file extension.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// Parse decodes configuration text in a given syntax over the defaults, and
// then validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	//
	switch format {
	case YAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		// An empty document decodes as EOF, which leaves the defaults.
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "yaml")
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, errors.Wrap(err, "toml")
		} else if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("toml: unknown key %q", undecoded[0].String())
		}
	}
	//
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	//
	return &cfg, nil
}

// Validate checks every setting has a meaningful value.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "loglevel")
	} else if !validFormat(c.Input.Format) {
		return errors.Errorf("input.format: unknown format %q", c.Input.Format)
	} else if !validFormat(c.Output.Format) {
		return errors.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	//
	return nil
}

// Level returns the configured log level.  This assumes the configuration has
// been validated.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	//
	return level
}

// Options returns the options for reading polynomials.
func (c *Config) Options() poly.Options {
	return poly.Options{Strict: c.Input.Strict, MaxExponent: c.Input.MaxExponent}
}

func validFormat(format string) bool {
	return format == PAIRS || format == TERMS
}
