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

package config

import (
	"io"

	"github.com/rs/zerolog"
)

type LogConfig struct {
	Level zerolog.Level `env:"LEVEL" toml:"level" default:"info" usage:"Log level (debug,info,warn,error)"`
}

// NewLogger builds a console logger writing to w.
func (cfg LogConfig) NewLogger(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	conWriter := zerolog.ConsoleWriter{Out: w}
	return zerolog.New(conWriter).Level(cfg.Level).With().Str("context", "qsortdemo").Timestamp().Logger()
}
