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

// Comparison-based building blocks shared by Introsort and NthElement.

// insertionSort is insertion sort for small arrays.
func insertionSort[T any](data []T, c Comparator[T]) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && c(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// heapSort is heapsort for the O(n log n) worst-case guarantee.
func heapSort[T any](data []T, c Comparator[T]) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, c)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i, c)
	}
}

func siftDown[T any](data []T, i, n int, c Comparator[T]) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && c(data[left], data[largest]) > 0 {
			largest = left
		}
		if right < n && c(data[right], data[largest]) > 0 {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// pivotMedianOf3 selects the median of the first, middle, and last elements.
func pivotMedianOf3[T any](data []T, c Comparator[T]) T {
	n := len(data)
	if n <= 2 {
		return data[0]
	}

	a := data[0]
	b := data[n/2]
	d := data[n-1]

	if c(a, b) > 0 {
		a, b = b, a
	}
	if c(b, d) > 0 {
		b = d
		if c(a, b) > 0 {
			b = a
		}
	}
	return b
}

// pivotSampled selects the median of five evenly spaced samples.
// For larger arrays this gives a better estimate than median-of-3.
func pivotSampled[T any](data []T, c Comparator[T]) T {
	n := len(data)
	if n <= pivotSampleThreshold {
		return pivotMedianOf3(data, c)
	}

	samples := [5]T{
		data[0],
		data[n/4],
		data[n/2],
		data[3*n/4],
		data[n-1],
	}

	insertionSort(samples[:], c)
	return samples[2]
}

// partition3Way performs three-way partitioning (Dutch National Flag).
// On return data[:lt] < pivot, data[lt:gt] == pivot and data[gt:] > pivot.
func partition3Way[T any](data []T, pivot T, c Comparator[T]) (lt, gt int) {
	gt = len(data)
	i := 0

	for i < gt {
		switch r := c(data[i], pivot); {
		case r < 0:
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		case r > 0:
			gt--
			data[i], data[gt] = data[gt], data[i]
		default:
			i++
		}
	}

	return lt, gt
}
