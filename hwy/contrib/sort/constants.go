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

import "github.com/ajroetker/go-qsort/hwy"

// Thresholds for different sorting strategies.
const (
	// minInsertionThreshold is the insertion sort cutoff on narrow targets.
	minInsertionThreshold = 16

	// maxInsertionThreshold caps the cutoff on wide targets.
	maxInsertionThreshold = 64

	// radixThreshold: use insertion sort instead of radix sort for arrays
	// this size or smaller, where the scratch buffer costs more than it saves.
	radixThreshold = 64

	// pivotSampleThreshold: use median-of-3 pivots for arrays this size or
	// smaller, sampled median-of-5 above.
	pivotSampleThreshold = 8
)

// insertionThreshold is the range size at or below which Introsort
// switches to insertion sort: four registers' worth of int32 lanes.
func insertionThreshold() int {
	return min(max(4*hwy.MaxLanes[int32](), minInsertionThreshold), maxInsertionThreshold)
}

// depthBudget returns 2 * (floor(log2(n)) + 1), the number of partitioning
// levels Introsort allows before falling back to heapsort.
func depthBudget(n int) int {
	depth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		depth++
	}
	return depth * 2
}
