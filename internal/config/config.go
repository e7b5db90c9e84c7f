// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the demo driver settings from the environment and an
// optional TOML file.
package config

import (
	"fmt"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "QSORT"

type Config struct {
	Log    LogConfig
	Format FormatConfig
}

// FormatConfig controls how sequences are printed.
type FormatConfig struct {
	Width     int    `env:"WIDTH" toml:"width" default:"2" usage:"Minimum width of each printed value"`
	Separator string `env:"SEPARATOR" toml:"separator" default:"|" usage:"Text printed after each value"`
}

// Load reads the configuration. Values come from defaults, then file (if
// non-empty), then QSORT_* environment variables. Command-line flags are
// handled by the caller.
func Load(file string) (*Config, error) {
	cfg := new(Config)

	var files []string
	if file != "" {
		files = []string{file}
	}

	loader := aconfig.LoaderFor(cfg, aconfig.Config{
		SkipFlags:          true,
		EnvPrefix:          EnvPrefix,
		AllowUnknownFields: false,
		AllowUnknownEnvs:   true,
		FailOnFileNotFound: true,
		Files:              files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
			".conf": aconfigtoml.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce readable output.
func (cfg *Config) Validate() error {
	if cfg.Format.Width < 0 {
		return fmt.Errorf("invalid format width %d: must not be negative", cfg.Format.Width)
	}
	return nil
}
