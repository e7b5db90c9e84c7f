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

// Package hwy holds the element-type constraints shared by the sorting
// packages and the runtime CPU dispatch used to size their small-array
// thresholds.
//
// The dispatch level never changes results, only tuning: every sort in
// this module produces the same output on every target.
//
//	import "github.com/ajroetker/go-qsort/hwy"
//
//	fmt.Println(hwy.CurrentName(), hwy.MaxLanes[int32]())
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all fixed-width integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Bytes is a constraint for the 8-bit integer types.
type Bytes interface {
	~int8 | ~uint8
}

// Lanes is a constraint for all fixed-width numeric types.
type Lanes interface {
	Floats | Integers
}
