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

package sort

import (
	"math"
	"testing"
)

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func TestSignedBytes(t *testing.T) {
	tests := []struct {
		a, b uint8
		want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{255, 0, -1},   // -1 < 0
		{128, 127, -1}, // -128 < 127
		{127, 128, 1},
		{255, 128, 1},
		{253, 253, 0},
	}
	for _, tt := range tests {
		if got := sign(SignedBytes(tt.a, tt.b)); got != tt.want {
			t.Errorf("SignedBytes(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestUnsignedBytes(t *testing.T) {
	tests := []struct {
		a, b uint8
		want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{255, 0, 1},
		{128, 1, 1},
		{255, 128, 1},
		{0, 255, -1},
	}
	for _, tt := range tests {
		if got := sign(UnsignedBytes(tt.a, tt.b)); got != tt.want {
			t.Errorf("UnsignedBytes(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestInt32sNoOverflow covers pairs whose difference overflows int32.
func TestInt32sNoOverflow(t *testing.T) {
	tests := []struct {
		a, b int32
		want int
	}{
		{math.MaxInt32, math.MinInt32, 1},
		{math.MinInt32, math.MaxInt32, -1},
		{math.MinInt32, 1, -1},
		{math.MaxInt32, -1, 1},
		{math.MinInt32, math.MinInt32, 0},
		{-3, 5, -1},
	}
	for _, tt := range tests {
		if got := sign(Int32s(tt.a, tt.b)); got != tt.want {
			t.Errorf("Int32s(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAscendingDescending(t *testing.T) {
	if Ascending(1, 2) >= 0 || Ascending(2, 1) <= 0 || Ascending(3, 3) != 0 {
		t.Errorf("Ascending[int] is not ascending")
	}
	if Descending(1, 2) <= 0 || Descending(2, 1) >= 0 || Descending(3, 3) != 0 {
		t.Errorf("Descending[int] is not descending")
	}
	if Ascending(math.NaN(), math.Inf(-1)) >= 0 {
		t.Errorf("Ascending should order NaN first")
	}
}

func TestReverse(t *testing.T) {
	rev := Reverse(Comparator[uint8](UnsignedBytes))
	if rev(0, 255) <= 0 {
		t.Errorf("Reverse(UnsignedBytes)(0, 255) should be positive")
	}
	data := []uint8{3, 255, 0, 128}
	if err := Sort(data, rev); err != nil {
		t.Fatal(err)
	}
	want := []uint8{255, 128, 3, 0}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("Sort(Reverse(UnsignedBytes)) = %v, want %v", data, want)
		}
	}
}

func TestByKey(t *testing.T) {
	type frame struct {
		id       string
		priority uint8
	}
	frames := []frame{{"c", 200}, {"a", 3}, {"b", 130}}
	byPriority := ByKey(func(f frame) uint8 { return f.priority }, SignedBytes)

	if err := Sort(frames, byPriority); err != nil {
		t.Fatal(err)
	}
	got := frames[0].id + frames[1].id + frames[2].id
	if got != "bca" {
		t.Errorf("Sort(ByKey(priority, SignedBytes)) order = %q, want %q", got, "bca")
	}
}
