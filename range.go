package bitv

import "github.com/damiendoligez/bitv/internal/words"

// checkRange validates the range [offset, offset+n) against v.
func (v *BitVector) checkRange(offset, n int) error {
	if offset < 0 || n < 0 || offset > v.length-n {
		return &ErrInvalidRange{Offset: offset, Count: n, Len: v.length}
	}
	return nil
}

// Sub returns a new BitVector holding the n bits of v starting at offset.
// It fails with ErrInvalidRange when the range does not fit in [0, Len).
func (v *BitVector) Sub(offset, n int) (*BitVector, error) {
	if err := v.checkRange(offset, n); err != nil {
		return nil, err
	}
	w := &BitVector{
		length: n,
		words:  make([]uint64, wordsFor(n)),
	}
	if offset%WordBits == 0 {
		first := offset / WordBits
		copy(w.words, v.words[first:first+wordsFor(n)])
		w.clearTail()
		return w, nil
	}
	for i := 0; i < n; i++ {
		if v.UncheckedGet(offset + i) {
			w.UncheckedSet(i, true)
		}
	}
	return w, nil
}

// Fill sets every bit in [offset, offset+n) to b, in place. The range is
// validated before any bit is written, so a failing call leaves v unchanged.
func (v *BitVector) Fill(offset, n int, b bool) error {
	if err := v.checkRange(offset, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	first, firstBit := position(offset)
	last, lastBit := position(offset + n - 1)
	firstMask := ^uint64(0) << firstBit
	lastMask := ^uint64(0) >> (WordBits - 1 - lastBit)
	if first == last {
		m := firstMask & lastMask
		if b {
			v.words[first] |= m
		} else {
			v.words[first] &^= m
		}
		return nil
	}
	if b {
		v.words[first] |= firstMask
		words.Fill(v.words[first+1:last], ^uint64(0))
		v.words[last] |= lastMask
	} else {
		v.words[first] &^= firstMask
		words.Fill(v.words[first+1:last], 0)
		v.words[last] &^= lastMask
	}
	return nil
}

// Blit copies n bits from src starting at srcOfs into dst starting at
// dstOfs, in place on dst. Both ranges are validated before any bit is
// written, so a failing call leaves dst unchanged.
//
// When src and dst are the same vector and the ranges overlap, the copy
// direction is chosen so that source bits are read before they are
// overwritten, like memmove.
func Blit(src *BitVector, srcOfs int, dst *BitVector, dstOfs, n int) error {
	if err := src.checkRange(srcOfs, n); err != nil {
		return err
	}
	if err := dst.checkRange(dstOfs, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if src == dst && srcOfs < dstOfs {
		// Destination starts past the source start: copy top-down so the
		// write cursor never runs ahead of unread source bits.
		for i := n - 1; i >= 0; i-- {
			dst.UncheckedSet(dstOfs+i, src.UncheckedGet(srcOfs+i))
		}
		return nil
	}
	if srcOfs%WordBits == 0 && dstOfs%WordBits == 0 {
		// Word-aligned fast path; copy has memmove semantics.
		nw := n / WordBits
		sw := srcOfs / WordBits
		dw := dstOfs / WordBits
		copy(dst.words[dw:dw+nw], src.words[sw:sw+nw])
		for i := nw * WordBits; i < n; i++ {
			dst.UncheckedSet(dstOfs+i, src.UncheckedGet(srcOfs+i))
		}
		return nil
	}
	for i := 0; i < n; i++ {
		dst.UncheckedSet(dstOfs+i, src.UncheckedGet(srcOfs+i))
	}
	return nil
}
