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
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-qsort/hwy/contrib/sort"
	"github.com/ajroetker/go-qsort/internal/display"
)

// Orders accepted by --order.
const (
	orderSigned8   = "signed8"
	orderUnsigned8 = "unsigned8"
	orderInt32     = "int32"
)

// Algorithms accepted by --algorithm.
const (
	algoLibrary   = "library"
	algoIntrosort = "introsort"
	algoTyped     = "typed"
)

var errUnknownOption = errors.New("unknown option")

type sortOptions struct {
	order     string
	algorithm string
	label     string
}

func newSortCmd(a *app) *cobra.Command {
	opts := &sortOptions{}

	cmd := &cobra.Command{
		Use:   "sort VALUES...",
		Short: "Sort the given values and print them in the demo format",
		Long: `Sorts the values given as arguments and prints one line.

Orders:
  - signed8:   bytes compared as int8 (accepts -128..255)
  - unsigned8: bytes compared as uint8 (accepts -128..255)
  - int32:     signed 32-bit integers

Algorithms:
  - library:   slices.SortFunc with the order's comparator
  - introsort: the package's own comparison sort
  - typed:     counting sort (bytes) or radix sort (int32)

Flags must come before the values. Values may be negative; a list that
starts with a negative value needs -- in front of it.

Example:
  qsortdemo sort --order unsigned8 1 18 128 255 0
  qsortdemo sort --order int32 5 -3 0
  qsortdemo sort --order int32 -- -3 5 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSort(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.order, "order", "o", orderUnsigned8, "comparison order: signed8, unsigned8 or int32")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", algoLibrary, "sort algorithm: library, introsort or typed")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "S:", "line label")

	// Stop flag parsing at the first value so "-3" after it is a number,
	// not a shorthand flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) runSort(cmd *cobra.Command, opts *sortOptions, args []string) error {
	a.logger.Debug().
		Str("order", opts.order).
		Str("algorithm", opts.algorithm).
		Int("count", len(args)).
		Msg("sorting")

	var line string
	switch strings.ToLower(opts.order) {
	case orderSigned8, orderUnsigned8:
		values, err := display.ParseBytes(args)
		if err != nil {
			return err
		}
		signed := strings.EqualFold(opts.order, orderSigned8)
		if err := sortBytes(values, signed, opts.algorithm); err != nil {
			return err
		}
		line = display.Line(opts.label, values, a.format)
	case orderInt32:
		values, err := display.ParseInt32s(args)
		if err != nil {
			return err
		}
		if err := sortInt32s(values, opts.algorithm); err != nil {
			return err
		}
		line = display.Line(opts.label, values, a.format)
	default:
		return fmt.Errorf("%w: order %q", errUnknownOption, opts.order)
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), line)
	return err
}

func sortBytes(values []uint8, signed bool, algorithm string) error {
	c, typed := sort.UnsignedBytes, sort.SortUnsignedBytes
	if signed {
		c, typed = sort.SignedBytes, sort.SortSignedBytes
	}
	return sortWith(values, c, typed, algorithm)
}

func sortInt32s(values []int32, algorithm string) error {
	return sortWith(values, sort.Int32s, sort.SortInt32s, algorithm)
}

func sortWith[T any](values []T, c sort.Comparator[T], typed func([]T), algorithm string) error {
	switch strings.ToLower(algorithm) {
	case algoLibrary:
		return sort.Sort(values, c)
	case algoIntrosort:
		return sort.Introsort(values, c)
	case algoTyped:
		typed(values)
		return nil
	default:
		return fmt.Errorf("%w: algorithm %q", errUnknownOption, algorithm)
	}
}
