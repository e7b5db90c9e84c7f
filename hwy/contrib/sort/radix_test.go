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
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountingSortUint8(t *testing.T) {
	data := []uint8{255, 0, 128, 1, 0, 127}
	CountingSortUint8(data)
	assert.Equal(t, []uint8{0, 0, 1, 127, 128, 255}, data)
}

func TestCountingSortInt8(t *testing.T) {
	data := []int8{127, -1, 0, -128, 5, -1}
	CountingSortInt8(data)
	assert.Equal(t, []int8{-128, -1, -1, 0, 5, 127}, data)
}

func TestRadixSortInt32(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 64, 65, 1000, 10000} {
		data := make([]int32, n)
		for i := range data {
			data[i] = int32(rng.Uint32())
		}
		if n > 2 {
			data[0], data[1] = math.MinInt32, math.MaxInt32
		}
		want := slices.Clone(data)
		slices.Sort(want)

		RadixSortInt32(data)
		assert.Equal(t, want, data, "n=%d", n)
	}
}

func TestRadixSortUint32(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 64, 65, 1000, 10000} {
		data := make([]uint32, n)
		for i := range data {
			data[i] = rng.Uint32()
		}
		want := slices.Clone(data)
		slices.Sort(want)

		RadixSortUint32(data)
		assert.Equal(t, want, data, "n=%d", n)
	}
}

func TestSortOrdered(t *testing.T) {
	u8 := []uint8{3, 255, 0}
	SortOrdered(u8)
	assert.Equal(t, []uint8{0, 3, 255}, u8)

	i8 := []int8{3, -1, 0}
	SortOrdered(i8)
	assert.Equal(t, []int8{-1, 0, 3}, i8)

	i32 := []int32{math.MaxInt32, 5, math.MinInt32}
	SortOrdered(i32)
	assert.Equal(t, []int32{math.MinInt32, 5, math.MaxInt32}, i32)

	u32 := []uint32{math.MaxUint32, 0, 7}
	SortOrdered(u32)
	assert.Equal(t, []uint32{0, 7, math.MaxUint32}, u32)

	f64 := []float64{2.5, -1, 0}
	SortOrdered(f64)
	assert.Equal(t, []float64{-1, 0, 2.5}, f64)

	// Named types take the generic path.
	type priority uint8
	p := []priority{9, 1, 200}
	SortOrdered(p)
	assert.Equal(t, []priority{1, 9, 200}, p)
}
