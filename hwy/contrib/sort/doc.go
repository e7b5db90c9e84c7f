// Package sort orders fixed-width numeric slices in place under a pluggable
// comparison rule.
//
// # Comparators
//
// A Comparator returns a negative number, zero, or a positive number when a
// is less than, equal to, or greater than b. The comparators in this package
// use relational operators only, so they are correct at the extremes of each
// type:
//   - SignedBytes: bytes ordered as int8 (255 is -1 and sorts before 0)
//   - UnsignedBytes: bytes ordered as uint8
//   - Int32s: int32, including math.MinInt32 and math.MaxInt32
//   - Ascending, Descending: any cmp.Ordered type
//
// # Algorithms
//
// Sort delegates to slices.SortFunc. The typed helpers (SortSignedBytes,
// SortUnsignedBytes, SortInt32s, SortOrdered) use non-comparison sorts
// instead:
//   - Counting sort for 8-bit values (one pass, 256 buckets)
//   - LSD radix sort for 32-bit values (four 8-bit passes)
//
// Introsort is a comparison sort with a guaranteed O(n log n) bound:
//   - Insertion sort for small ranges, sized from the SIMD register width
//   - Sampled-median pivot and three-way partitioning
//   - Heapsort fallback once the depth budget runs out
//
// None of the sorts are stable. For every element type the result is
// identical between algorithms, since elements that compare equal are equal
// values.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-qsort/hwy/contrib/sort"
//
//	func Priorities(frames []uint8) error {
//	    return sort.Sort(frames, sort.UnsignedBytes)
//	}
package sort
