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
	"cmp"

	"github.com/ajroetker/go-qsort/hwy"
)

// =============================================================================
// Counting sort (8-bit)
// =============================================================================

// CountingSortUint8 sorts data ascending in one histogram pass.
func CountingSortUint8(data []uint8) {
	countingSort(data, false)
}

// CountingSortInt8 sorts data ascending in one histogram pass.
func CountingSortInt8(data []int8) {
	countingSort(data, true)
}

// countingSort sorts 8-bit values by their bit pattern. When signed is set,
// buckets 128-255 (negative) are emitted before 0-127 (positive).
func countingSort[T hwy.Bytes](data []T, signed bool) {
	if len(data) <= 1 {
		return
	}

	var count [256]int
	for _, v := range data {
		count[uint8(v)]++
	}

	i := 0
	emit := func(lo, hi int) {
		for b := lo; b < hi; b++ {
			v := T(b)
			for n := count[b]; n > 0; n-- {
				data[i] = v
				i++
			}
		}
	}

	if signed {
		emit(128, 256)
		emit(0, 128)
	} else {
		emit(0, 256)
	}
}

// =============================================================================
// LSD radix sort (32-bit)
// =============================================================================

// RadixSortInt32 sorts data ascending with four 8-bit LSD passes.
// It allocates one scratch buffer of len(data).
func RadixSortInt32(data []int32) {
	radixSort32(data, true)
}

// RadixSortUint32 sorts data ascending with four 8-bit LSD passes.
// It allocates one scratch buffer of len(data).
func RadixSortUint32(data []uint32) {
	radixSort32(data, false)
}

func radixSort32[T ~int32 | ~uint32](data []T, signed bool) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= radixThreshold {
		insertionSort(data, cmp.Compare[T])
		return
	}

	// An even number of passes leaves the result back in data.
	src, dst := data, make([]T, n)
	for shift := 0; shift < 32; shift += 8 {
		radixPass(src, dst, shift, signed && shift == 24)
		src, dst = dst, src
	}
}

// radixPass performs one stable counting pass on the byte at shift.
// signedMSB orders buckets 128-255 (sign bit set) before 0-127.
func radixPass[T ~int32 | ~uint32](src, dst []T, shift int, signedMSB bool) {
	var count [256]int
	for _, v := range src {
		count[(uint32(v)>>shift)&0xFF]++
	}

	// Compute prefix sum to get bucket offsets
	offset := 0
	bucket := func(b int) {
		c := count[b]
		count[b] = offset
		offset += c
	}
	if signedMSB {
		for b := 128; b < 256; b++ {
			bucket(b)
		}
		for b := 0; b < 128; b++ {
			bucket(b)
		}
	} else {
		for b := 0; b < 256; b++ {
			bucket(b)
		}
	}

	// Scatter elements to destination
	for _, v := range src {
		digit := (uint32(v) >> shift) & 0xFF
		dst[count[digit]] = v
		count[digit]++
	}
}
