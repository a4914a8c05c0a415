package bitv

import (
	"math"
	"slices"

	"github.com/damiendoligez/bitv/internal/words"
)

const (
	// WordBits is the number of bits stored per backing word.
	WordBits = 64

	// MaxLen is the maximum length of a BitVector in bits, chosen so that
	// the backing word count always fits in an int.
	MaxLen = (math.MaxInt / WordBits) * WordBits
)

// Lookup tables for setting and clearing single bits without shifting in the
// hot path. bitMask[j] has only bit j set; bitMaskInv[j] has every bit set
// except bit j. Built once at package init, never mutated.
var (
	bitMask    [WordBits]uint64
	bitMaskInv [WordBits]uint64
)

func init() {
	for j := range bitMask {
		bitMask[j] = 1 << j
		bitMaskInv[j] = ^bitMask[j]
	}
}

// BitVector is a fixed-capacity packed sequence of booleans backed by an
// exclusively owned []uint64. The length is fixed at construction.
//
// Bit i lives in words[i/WordBits] at bit offset i%WordBits. Padding bits
// beyond the logical length in the last word are always zero; every
// constructor and every operation maintains that invariant.
//
// Mutating operations (Set, Fill, Blit) work in place; combining operations
// (Append, Concat, Sub, And, Or, Xor, Not, Map) always allocate a fresh
// result and never alias their operands' storage.
type BitVector struct {
	length int
	words  []uint64
}

// position returns the backing word index and bit offset of bit n.
func position(n int) (word, bit int) {
	return n / WordBits, n % WordBits
}

// wordsFor returns the number of backing words needed for n bits.
func wordsFor(n int) int {
	return (n + WordBits - 1) / WordBits
}

// tailMask returns the mask of in-range bits within the last backing word of
// an n-bit vector, n > 0.
func tailMask(n int) uint64 {
	if r := n % WordBits; r != 0 {
		return (uint64(1) << r) - 1
	}
	return ^uint64(0)
}

// clearTail zeroes the padding bits beyond the logical length in the last
// backing word.
func (v *BitVector) clearTail() {
	if r := v.length % WordBits; r != 0 {
		v.words[len(v.words)-1] &= (uint64(1) << r) - 1
	}
}

// New creates a BitVector of n bits, each initialized to b.
func New(n int, b bool) (*BitVector, error) {
	if n < 0 || n > MaxLen {
		return nil, &ErrInvalidSize{Size: n}
	}
	v := &BitVector{
		length: n,
		words:  make([]uint64, wordsFor(n)),
	}
	if b {
		words.Fill(v.words, ^uint64(0))
		v.clearTail()
	}
	return v, nil
}

// Init creates a BitVector of n bits where bit i is f(i). f is applied to
// each index in ascending order.
func Init(n int, f func(int) bool) (*BitVector, error) {
	v, err := New(n, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if f(i) {
			v.UncheckedSet(i, true)
		}
	}
	return v, nil
}

// Copy returns an independent duplicate of v. The copy shares no storage
// with v.
func (v *BitVector) Copy() *BitVector {
	w := &BitVector{
		length: v.length,
		words:  make([]uint64, len(v.words)),
	}
	copy(w.words, v.words)
	return w
}

// Len returns the number of bits in v.
func (v *BitVector) Len() int {
	return v.length
}

// Get returns bit i. It fails with ErrIndexOutOfRange when i is outside
// [0, Len).
func (v *BitVector) Get(i int) (bool, error) {
	if i < 0 || i >= v.length {
		return false, &ErrIndexOutOfRange{Index: i, Len: v.length}
	}
	return v.UncheckedGet(i), nil
}

// Set sets bit i to b in place. It fails with ErrIndexOutOfRange when i is
// outside [0, Len).
func (v *BitVector) Set(i int, b bool) error {
	if i < 0 || i >= v.length {
		return &ErrIndexOutOfRange{Index: i, Len: v.length}
	}
	v.UncheckedSet(i, b)
	return nil
}

// UncheckedGet returns bit i without bounds checking.
//
// Unsafe: the caller must guarantee 0 <= i < Len. An out-of-range index
// reads past the backing storage and panics.
func (v *BitVector) UncheckedGet(i int) bool {
	word, bit := position(i)
	return v.words[word]&bitMask[bit] != 0
}

// UncheckedSet sets bit i to b without bounds checking.
//
// Unsafe: the caller must guarantee 0 <= i < Len. An out-of-range index
// writes past the backing storage and panics; an in-word but past-length
// index silently corrupts the padding invariant.
func (v *BitVector) UncheckedSet(i int, b bool) {
	word, bit := position(i)
	if b {
		v.words[word] |= bitMask[bit]
	} else {
		v.words[word] &= bitMaskInv[bit]
	}
}

// Equal reports whether v and w have the same length and the same bit value
// at every index.
func (v *BitVector) Equal(w *BitVector) bool {
	if v.length != w.length {
		return false
	}
	// Padding is zero on both sides, so raw words compare exactly.
	return slices.Equal(v.words, w.words)
}
