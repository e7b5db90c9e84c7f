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

package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the widest SIMD instruction set detected at startup.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable SIMD, or HWY_NO_SIMD was set.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512F instructions (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
// Scalar mode uses 16 bytes so thresholds stay comparable to NEON.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// currentLevel is set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the detected SIMD level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes.
// For example: 16 for scalar/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns a human-readable name for the current target.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether the HWY_NO_SIMD environment variable is set.
// When set, detection is skipped and the scalar level is used.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes of type T in one register at the
// current width.
//
// For example, with AVX2 (32 bytes):
//   - uint8: 32 lanes
//   - int32: 8 lanes
//   - float64: 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	return CurrentWidth() / int(unsafe.Sizeof(dummy))
}
