package bitv

// Append returns a new BitVector holding the bits of v followed by the bits
// of w. Neither operand is modified.
func (v *BitVector) Append(w *BitVector) *BitVector {
	return Concat(v, w)
}

// Concat returns a new BitVector holding the bits of every vector in vs,
// in order. The operands are not modified.
func Concat(vs ...*BitVector) *BitVector {
	total := 0
	for _, v := range vs {
		total += v.length
	}
	out := &BitVector{
		length: total,
		words:  make([]uint64, wordsFor(total)),
	}
	offset := 0
	for _, v := range vs {
		// Ranges are valid by construction.
		_ = Blit(v, 0, out, offset, v.length)
		offset += v.length
	}
	return out
}
