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

// Comparator imposes a total order on values of type T.
//
// It must return:
//
// 1. a negative number if a < b
//
// 2. 0 if a == b
//
// 3. a positive number if a > b
type Comparator[T any] func(a, b T) int

// compareInts orders two integers without subtracting them.
func compareInts[T hwy.Integers](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SignedBytes orders bytes by their two's complement value, so 128..255
// (-128..-1) come before 0..127.
func SignedBytes(a, b uint8) int {
	return compareInts(int8(a), int8(b))
}

// UnsignedBytes orders bytes by their unsigned value.
func UnsignedBytes(a, b uint8) int {
	return compareInts(a, b)
}

// Int32s orders signed 32-bit integers.
func Int32s(a, b int32) int {
	return compareInts(a, b)
}

// Ascending orders any cmp.Ordered type from smallest to largest.
// NaNs sort before all other floats.
func Ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Descending orders any cmp.Ordered type from largest to smallest.
func Descending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

// Reverse returns a comparator that orders the opposite way to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// ByKey returns a comparator ordering values by key(v) under c.
func ByKey[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int { return c(key(a), key(b)) }
}
