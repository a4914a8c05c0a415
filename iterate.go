package bitv

import (
	"iter"
	"math/bits"
)

// ForEach calls f once per bit value in ascending index order.
func (v *BitVector) ForEach(f func(bool)) {
	for i := 0; i < v.length; i++ {
		f(v.UncheckedGet(i))
	}
}

// ForEachIndex calls f once per index and bit value in ascending index
// order.
func (v *BitVector) ForEachIndex(f func(int, bool)) {
	for i := 0; i < v.length; i++ {
		f(i, v.UncheckedGet(i))
	}
}

// Map returns a new BitVector of the same length where bit i is f applied
// to bit i of v, evaluated in ascending index order.
func (v *BitVector) Map(f func(bool) bool) *BitVector {
	out := &BitVector{
		length: v.length,
		words:  make([]uint64, len(v.words)),
	}
	for i := 0; i < v.length; i++ {
		if f(v.UncheckedGet(i)) {
			out.UncheckedSet(i, true)
		}
	}
	return out
}

// MapIndex is Map with the index passed to f.
func (v *BitVector) MapIndex(f func(int, bool) bool) *BitVector {
	out := &BitVector{
		length: v.length,
		words:  make([]uint64, len(v.words)),
	}
	for i := 0; i < v.length; i++ {
		if f(i, v.UncheckedGet(i)) {
			out.UncheckedSet(i, true)
		}
	}
	return out
}

// FoldLeft accumulates f over the bits of v in ascending index order,
// starting from acc.
func FoldLeft[T any](v *BitVector, acc T, f func(T, bool) T) T {
	for i := 0; i < v.length; i++ {
		acc = f(acc, v.UncheckedGet(i))
	}
	return acc
}

// FoldRight accumulates f over the bits of v in descending index order,
// starting from acc.
func FoldRight[T any](v *BitVector, f func(bool, T) T, acc T) T {
	for i := v.length - 1; i >= 0; i-- {
		acc = f(v.UncheckedGet(i), acc)
	}
	return acc
}

// All returns an iterator over every (index, bit) pair of v in ascending
// index order.
func (v *BitVector) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.UncheckedGet(i)) {
				return
			}
		}
	}
}

// Ones returns an iterator over the indices of the true bits of v in
// ascending order.
func (v *BitVector) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for wi, w := range v.words {
			for w != 0 {
				if !yield(wi*WordBits + bits.TrailingZeros64(w)) {
					return
				}
				w &= w - 1
			}
		}
	}
}
