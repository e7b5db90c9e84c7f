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

package display

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		label string
		vals  []uint8
		f     Format
		want  string
	}{
		{
			name:  "sample",
			label: "US:",
			vals:  []uint8{1, 18, 128, 127, 129, 0, 6, 4, 3, 0, 255, 253},
			f:     DefaultFormat,
			want:  "US: 1|18|128|127|129| 0| 6| 4| 3| 0|255|253|\n",
		},
		{
			name:  "empty",
			label: "S0:",
			f:     DefaultFormat,
			want:  "S0:\n",
		},
		{
			name:  "custom",
			label: "> ",
			vals:  []uint8{7, 42},
			f:     Format{Width: 4, Separator: ","},
			want:  ">    7,  42,\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Line(tt.label, tt.vals, tt.f)); diff != "" {
				t.Errorf("Line() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineInt32(t *testing.T) {
	got := Line("S2:", []int32{-2147483648, -3, 0, 5, 2147483647}, DefaultFormat)
	assert.Equal(t, "S2:-2147483648|-3| 0| 5|2147483647|\n", got)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, "S1:", []uint8{0, 255}, DefaultFormat))
	assert.Equal(t, "S1: 0|255|\n", buf.String())
}

func TestParseBytes(t *testing.T) {
	got, err := ParseBytes([]string{"0", "255", "-1", "-128", " 18 "})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 255, 255, 128, 18}, got)

	for _, bad := range []string{"256", "-129", "x", ""} {
		_, err := ParseBytes([]string{"1", bad})
		assert.Error(t, err, "ParseBytes(%q)", bad)
	}
}

func TestParseInt32s(t *testing.T) {
	got, err := ParseInt32s([]string{"5", "-3", "2147483647", "-2147483648"})
	require.NoError(t, err)
	assert.Equal(t, []int32{5, -3, 2147483647, -2147483648}, got)

	_, err = ParseInt32s([]string{"2147483648"})
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}
