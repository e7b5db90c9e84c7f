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

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-qsort/hwy"
	"github.com/ajroetker/go-qsort/hwy/contrib/sort"
	"github.com/ajroetker/go-qsort/internal/config"
	"github.com/ajroetker/go-qsort/internal/display"
)

var (
	sampleBytes = []uint8{1, 18, 128, 127, 129, 0, 6, 4, 3, 0, 255, 253}
	sampleInt32 = []int32{5, -3, 0, 2147483647, -2147483648}
)

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	configFile string
	logLevel   string

	logger zerolog.Logger
	format display.Format
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "qsortdemo",
		Short: "Print sample sequences before and after sorting",
		Long: `Prints a fixed byte sample unsorted (US), sorted as signed bytes (S0),
sorted as unsigned bytes (S1), and a fixed int32 sample sorted (S2).

Settings are read from QSORT_* environment variables and an optional
TOML file given with --config.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDemo,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug,info,warn,error); overrides config")

	root.AddCommand(newSortCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		level, err := zerolog.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
		}
		cfg.Log.Level = level
	}

	a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())
	log.Logger = a.logger
	a.format = display.Format{Width: cfg.Format.Width, Separator: cfg.Format.Separator}

	a.logger.Debug().
		Str("dispatch", hwy.CurrentName()).
		Int("width", hwy.CurrentWidth()).
		Str("command", cmd.Name()).
		Msg("configuration loaded")
	return nil
}

// runDemo sorts copies of the fixed samples and prints every stage.
func (a *app) runDemo(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	signed := append([]uint8(nil), sampleBytes...)
	unsigned := append([]uint8(nil), sampleBytes...)
	ints := append([]int32(nil), sampleInt32...)

	if err := sort.Sort(signed, sort.SignedBytes); err != nil {
		return err
	}
	if err := sort.Sort(unsigned, sort.UnsignedBytes); err != nil {
		return err
	}
	if err := sort.Sort(ints, sort.Int32s); err != nil {
		return err
	}

	for _, line := range []string{
		display.Line("US:", sampleBytes, a.format),
		display.Line("S0:", signed, a.format),
		display.Line("S1:", unsigned, a.format),
		display.Line("S2:", ints, a.format),
	} {
		if _, err := fmt.Fprint(out, line); err != nil {
			return err
		}
	}

	a.logger.Debug().Int("bytes", len(sampleBytes)).Int("int32s", len(sampleInt32)).Msg("demo complete")
	return nil
}
