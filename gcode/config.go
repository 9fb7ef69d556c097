// seehuhn.de/go/geotk - conversion tools for 2D geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package gcode writes milling toolpaths as G-code.
package gcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrConfig indicates an invalid machine configuration.
var ErrConfig = errors.New("invalid machine configuration")

// Config describes the milling machine setup.  All heights are absolute
// z coordinates.
type Config struct {
	ZMill    *float64 `yaml:"z-mill" toml:"z-mill" json:"z-mill"`       // final cutting height
	ZSafety  *float64 `yaml:"z-safety" toml:"z-safety" json:"z-safety"` // travel height
	Feedrate *float64 `yaml:"feedrate" toml:"feedrate" json:"feedrate"`

	// ZLayerDepth is the depth removed in each pass.  If unset, the
	// material is cut in a single pass.
	ZLayerDepth *float64 `yaml:"z-layer-depth" toml:"z-layer-depth" json:"z-layer-depth"`

	// ZMaterial is the height of the material surface.  It defaults to
	// ZMill.
	ZMaterial *float64 `yaml:"z-material" toml:"z-material" json:"z-material"`
}

// LoadConfig reads a configuration file.  The format is chosen by the
// file name extension: ".yaml", ".yml", ".toml" or ".json".
func LoadConfig(fname string) (*Config, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	conf, err := DecodeConfig(fd, filepath.Ext(fname))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return conf, nil
}

// DecodeConfig reads a configuration in the given format, which is a
// file name extension like ".toml".  The configuration is validated.
func DecodeConfig(r io.Reader, format string) (*Config, error) {
	conf := &Config{}
	var err error
	switch strings.ToLower(format) {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(r).Decode(conf)
	case ".toml":
		err = toml.NewDecoder(r).Decode(conf)
	case ".json":
		err = json.NewDecoder(r).Decode(conf)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrConfig, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	if c.ZMill == nil {
		return fmt.Errorf("%w: z-mill is missing", ErrConfig)
	}
	if c.ZSafety == nil {
		return fmt.Errorf("%w: z-safety is missing", ErrConfig)
	}
	if c.ZLayerDepth != nil && *c.ZLayerDepth <= 0 {
		return fmt.Errorf("%w: z-layer-depth must be positive", ErrConfig)
	}
	return nil
}

// Float returns a pointer to x, for filling in a [Config].
func Float(x float64) *float64 {
	return &x
}
