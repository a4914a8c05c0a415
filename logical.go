package bitv

import "github.com/damiendoligez/bitv/internal/words"

// And returns the elementwise conjunction of v and w as a new BitVector.
// It fails with ErrLengthMismatch when the lengths differ.
func (v *BitVector) And(w *BitVector) (*BitVector, error) {
	if v.length != w.length {
		return nil, &ErrLengthMismatch{Expected: v.length, Actual: w.length}
	}
	out := v.Copy()
	words.And(out.words, w.words)
	return out, nil
}

// Or returns the elementwise disjunction of v and w as a new BitVector.
// It fails with ErrLengthMismatch when the lengths differ.
func (v *BitVector) Or(w *BitVector) (*BitVector, error) {
	if v.length != w.length {
		return nil, &ErrLengthMismatch{Expected: v.length, Actual: w.length}
	}
	out := v.Copy()
	words.Or(out.words, w.words)
	return out, nil
}

// Xor returns the elementwise exclusive-or of v and w as a new BitVector.
// It fails with ErrLengthMismatch when the lengths differ.
func (v *BitVector) Xor(w *BitVector) (*BitVector, error) {
	if v.length != w.length {
		return nil, &ErrLengthMismatch{Expected: v.length, Actual: w.length}
	}
	out := v.Copy()
	words.Xor(out.words, w.words)
	return out, nil
}

// Not returns the elementwise complement of v as a new BitVector.
func (v *BitVector) Not() *BitVector {
	out := v.Copy()
	words.Not(out.words)
	out.clearTail()
	return out
}

// AllZeros reports whether every bit of v is false. The empty vector is all
// zeros.
func (v *BitVector) AllZeros() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// AllOnes reports whether every bit of v is true. The empty vector is all
// ones.
func (v *BitVector) AllOnes() bool {
	if v.length == 0 {
		return true
	}
	last := len(v.words) - 1
	for _, w := range v.words[:last] {
		if w != ^uint64(0) {
			return false
		}
	}
	return v.words[last] == tailMask(v.length)
}

// Count returns the number of true bits in v.
func (v *BitVector) Count() int {
	return words.Popcount(v.words)
}
