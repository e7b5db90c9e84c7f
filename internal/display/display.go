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

// Package display renders sequences in the demo's fixed-width line format:
//
//	US: 1|18|128|127|129| 0| 6| 4| 3| 0|255|253|
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-qsort/hwy"
)

// Format controls value width and the separator after each value.
type Format struct {
	Width     int
	Separator string
}

// DefaultFormat is two-character right-aligned values followed by "|".
var DefaultFormat = Format{Width: 2, Separator: "|"}

// Cell renders one value right-aligned to the format width.
func Cell[T hwy.Integers](v T, f Format) string {
	return fmt.Sprintf("%*d%s", f.Width, v, f.Separator)
}

// Line renders label followed by every value and a trailing newline.
func Line[T hwy.Integers](label string, values []T, f Format) string {
	cells := lo.Map(values, func(v T, _ int) string { return Cell(v, f) })
	return label + strings.Join(cells, "") + "\n"
}

// Fprint writes Line(label, values, f) to w.
func Fprint[T hwy.Integers](w io.Writer, label string, values []T, f Format) error {
	_, err := io.WriteString(w, Line(label, values, f))
	return err
}

// ParseBytes parses decimal byte values. Both 0..255 and -128..-1 are
// accepted; negative values are stored as their two's complement byte.
func ParseBytes(args []string) ([]uint8, error) {
	return parseAll(args, func(s string) (uint8, error) {
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return 0, err
		}
		if v < -128 || v > 255 {
			return 0, fmt.Errorf("value %d out of byte range [-128, 255]", v)
		}
		return uint8(v), nil
	})
}

// ParseInt32s parses decimal int32 values.
func ParseInt32s(args []string) ([]int32, error) {
	return parseAll(args, func(s string) (int32, error) {
		v, err := strconv.ParseInt(s, 10, 32)
		return int32(v), err
	})
}

func parseAll[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(args))
	for i, arg := range args {
		v, err := parse(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q): %w", i+1, arg, err)
		}
		out = append(out, v)
	}
	return out, nil
}
