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
	"errors"
	"fmt"
	"slices"

	"github.com/ajroetker/go-qsort/hwy"
)

// ErrInvalidArgument is returned when a sort is called with a nil comparator.
var ErrInvalidArgument = errors.New("sort: invalid argument")

func checkComparator[T any](c Comparator[T]) error {
	if c == nil {
		return fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	return nil
}

// Sort sorts data in-place into non-decreasing order under c, using
// slices.SortFunc. The sort is not stable.
//
// A nil comparator returns ErrInvalidArgument and leaves data untouched.
func Sort[T any](data []T, c Comparator[T]) error {
	if err := checkComparator(c); err != nil {
		return err
	}
	if len(data) <= 1 {
		return nil
	}
	slices.SortFunc(data, c)
	return nil
}

// SortSignedBytes sorts bytes ascending as int8 values.
// The result equals Sort(data, SignedBytes).
func SortSignedBytes(data []uint8) {
	countingSort(data, true)
}

// SortUnsignedBytes sorts bytes ascending as uint8 values.
// The result equals Sort(data, UnsignedBytes).
func SortUnsignedBytes(data []uint8) {
	countingSort(data, false)
}

// SortInt32s sorts int32 values ascending.
// The result equals Sort(data, Int32s).
func SortInt32s(data []int32) {
	RadixSortInt32(data)
}

// SortOrdered sorts data ascending using the best algorithm for the type:
//   - 8-bit integers (uint8, int8): counting sort
//   - 32-bit integers (int32, uint32): radix sort
//   - everything else: slices.Sort
func SortOrdered[T hwy.Lanes](data []T) {
	if len(data) <= 1 {
		return
	}

	switch d := any(data).(type) {
	case []uint8:
		CountingSortUint8(d)
	case []int8:
		CountingSortInt8(d)
	case []int32:
		RadixSortInt32(d)
	case []uint32:
		RadixSortUint32(d)
	default:
		slices.Sort(data)
	}
}

// Introsort sorts data in-place under c without delegating to the standard
// library. It combines:
//   - Insertion sort for small ranges
//   - Three-way quicksort partitioning around a sampled median
//   - Heapsort fallback once the depth budget is spent
//
// It is O(n log n) in the worst case even for an inconsistent comparator,
// though the order it produces is then meaningless.
func Introsort[T any](data []T, c Comparator[T]) error {
	if err := checkComparator(c); err != nil {
		return err
	}
	if len(data) <= 1 {
		return nil
	}
	introsort(data, c, depthBudget(len(data)), insertionThreshold())
	return nil
}

func introsort[T any](data []T, c Comparator[T], depthLimit, small int) {
	for len(data) > small {
		if depthLimit == 0 {
			heapSort(data, c)
			return
		}
		depthLimit--

		pivot := pivotSampled(data, c)
		lt, gt := partition3Way(data, pivot, c)

		// Recurse on the smaller side, loop on the larger.
		if lt < len(data)-gt {
			introsort(data[:lt], c, depthLimit, small)
			data = data[gt:]
		} else {
			introsort(data[gt:], c, depthLimit, small)
			data = data[:lt]
		}
	}
	insertionSort(data, c)
}

// NthElement rearranges data such that the element at index k is the
// element that would be at that position if data were sorted under c.
// Elements before k compare <= data[k], elements after compare >= data[k].
// An out-of-range k leaves data untouched.
func NthElement[T any](data []T, k int, c Comparator[T]) error {
	if err := checkComparator(c); err != nil {
		return err
	}
	if k < 0 || k >= len(data) {
		return nil
	}
	nthElement(data, k, c, depthBudget(len(data)), insertionThreshold())
	return nil
}

func nthElement[T any](data []T, k int, c Comparator[T], depthLimit, small int) {
	for len(data) > small {
		if depthLimit == 0 {
			heapSort(data, c)
			return
		}
		depthLimit--

		pivot := pivotSampled(data, c)
		lt, gt := partition3Way(data, pivot, c)

		switch {
		case k < lt:
			data = data[:lt]
		case k >= gt:
			data = data[gt:]
			k -= gt
		default:
			// k is in the equal partition
			return
		}
	}
	insertionSort(data, c)
}

// IsSorted reports whether data is in non-decreasing order under c.
// A nil comparator reports false.
func IsSorted[T any](data []T, c Comparator[T]) bool {
	if c == nil {
		return false
	}
	for i := 1; i < len(data); i++ {
		if c(data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}

// IsSortedOrdered reports whether data is in ascending order.
func IsSortedOrdered[T cmp.Ordered](data []T) bool {
	return IsSorted(data, Ascending[T])
}
