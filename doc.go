// Package bitv provides a fixed-capacity packed bit vector for Go.
//
// A BitVector maps a contiguous range of integer indices to boolean values,
// packed 64 bits per backing word. Capacity is fixed at creation; there is
// no dynamic growth.
//
// # Quick Start
//
//	v, _ := bitv.New(10, false)
//	_ = v.Set(3, true)
//	fmt.Println(v) // 0001000000
//
//	w, _ := bitv.FromString("1100")
//	b, _ := w.Get(0) // true
//
// # Operations
//
//   - Indexed access: Get/Set (bounds-checked), UncheckedGet/UncheckedSet
//     (unsafe, for callers that have already proven index validity)
//   - Structural: Copy, Append, Concat, Sub, in-place Fill and Blit
//     (memmove semantics for overlapping ranges)
//   - Bitwise algebra: And, Or, Xor, Not, AllZeros, AllOnes, Count
//   - Traversal: ForEach, ForEachIndex, Map, MapIndex, FoldLeft, FoldRight,
//     plus range-over-func iterators All and Ones
//   - String round-trip: String/FromString with one '0' or '1' character per
//     bit in ascending index order
//
// # Padding Guarantee
//
// Bits beyond the logical length in the last backing word are always zero.
// Every constructor and every operation maintains this, so AllZeros, Count
// and Equal are exact logical predicates and the bitwise operations can work
// on raw words.
//
// # Concurrency
//
// A BitVector exclusively owns its storage and provides no internal locking.
// Concurrent readers of the same vector are safe as long as there is no
// concurrent writer; concurrent mutation must be synchronized by the caller.
package bitv
