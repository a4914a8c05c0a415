package bitv

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSub(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		offset   int
		count    int
		expected string
	}{
		{"Middle", "110110", 2, 3, "011"},
		{"Prefix", "110110", 0, 2, "11"},
		{"Suffix", "110110", 4, 2, "10"},
		{"Whole", "110110", 0, 6, "110110"},
		{"Empty", "110110", 3, 0, ""},
		{"EmptyAtEnd", "110110", 6, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromString(tt.input)
			require.NoError(t, err)

			s, err := v.Sub(tt.offset, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.String())
		})
	}
}

func TestSub_Aligned(t *testing.T) {
	// Word-aligned offsets take the word-copy path.
	v, err := Init(200, func(i int) bool { return i%7 == 0 })
	require.NoError(t, err)

	s, err := v.Sub(64, 100)
	require.NoError(t, err)
	require.Equal(t, 100, s.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, (i+64)%7 == 0, s.UncheckedGet(i), "bit %d", i)
	}
	// The copied tail word must not leak source bits past the new length.
	assert.Equal(t, strings.Count(s.String(), "1"), s.Count())
}

func TestSub_InvalidRange(t *testing.T) {
	v, err := FromString("110110")
	require.NoError(t, err)

	for _, tt := range []struct{ offset, count int }{
		{-1, 2},
		{0, -1},
		{4, 3},
		{7, 0},
	} {
		_, err := v.Sub(tt.offset, tt.count)
		var e *ErrInvalidRange
		require.ErrorAs(t, err, &e, "offset %d count %d", tt.offset, tt.count)
		assert.Equal(t, tt.offset, e.Offset)
		assert.Equal(t, tt.count, e.Count)
		assert.Equal(t, 6, e.Len)
	}
	assert.Equal(t, "110110", v.String())
}

func TestFill(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		offset   int
		count    int
		value    bool
		expected string
	}{
		{"SetMiddle", "000000", 2, 3, true, "001110"},
		{"ClearMiddle", "111111", 2, 3, false, "110001"},
		{"SetAll", "000000", 0, 6, true, "111111"},
		{"Nothing", "010101", 3, 0, true, "010101"},
		{"SetEdge", "0000", 3, 1, true, "0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromString(tt.input)
			require.NoError(t, err)

			require.NoError(t, v.Fill(tt.offset, tt.count, tt.value))
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

func TestFill_MultiWord(t *testing.T) {
	v, err := New(300, false)
	require.NoError(t, err)

	require.NoError(t, v.Fill(10, 250, true))
	for i := 0; i < 300; i++ {
		assert.Equal(t, i >= 10 && i < 260, v.UncheckedGet(i), "bit %d", i)
	}
	assert.Equal(t, 250, v.Count())

	require.NoError(t, v.Fill(60, 150, false))
	assert.Equal(t, 250-150, v.Count())
}

func TestFill_InvalidRange(t *testing.T) {
	v, err := FromString("010101")
	require.NoError(t, err)

	var e *ErrInvalidRange
	require.ErrorAs(t, v.Fill(3, 4, true), &e)
	require.ErrorAs(t, v.Fill(-1, 1, true), &e)
	require.ErrorAs(t, v.Fill(0, -1, true), &e)

	// A failed Fill writes nothing.
	assert.Equal(t, "010101", v.String())
}

func TestBlit(t *testing.T) {
	src, err := FromString("11111")
	require.NoError(t, err)
	dst, err := FromString("0000000000")
	require.NoError(t, err)

	require.NoError(t, Blit(src, 1, dst, 4, 3))
	assert.Equal(t, "0000111000", dst.String())
	assert.Equal(t, "11111", src.String())
}

func TestBlit_Aligned(t *testing.T) {
	src, err := Init(256, func(i int) bool { return i%5 == 0 })
	require.NoError(t, err)
	dst, err := New(256, false)
	require.NoError(t, err)

	require.NoError(t, Blit(src, 64, dst, 128, 100))
	for i := 0; i < 256; i++ {
		expected := false
		if i >= 128 && i < 228 {
			expected = (i - 128 + 64) % 5 == 0
		}
		assert.Equal(t, expected, dst.UncheckedGet(i), "bit %d", i)
	}
}

func TestBlit_InvalidRange(t *testing.T) {
	src, err := FromString("111")
	require.NoError(t, err)
	dst, err := FromString("00000")
	require.NoError(t, err)

	var e *ErrInvalidRange
	require.ErrorAs(t, Blit(src, 0, dst, 0, 4), &e, "source range too long")
	require.ErrorAs(t, Blit(src, 0, dst, 3, 3), &e, "destination range too long")
	require.ErrorAs(t, Blit(src, -1, dst, 0, 1), &e)
	require.ErrorAs(t, Blit(src, 0, dst, -1, 1), &e)

	// A failed Blit writes nothing.
	assert.Equal(t, "00000", dst.String())
}

// blitOracle copies the source range into a scratch vector first, so the
// result is independent of any overlap between the ranges.
func blitOracle(t *testing.T, v *BitVector, srcOfs, dstOfs, n int) *BitVector {
	t.Helper()
	scratch, err := v.Sub(srcOfs, n)
	require.NoError(t, err)
	out := v.Copy()
	require.NoError(t, Blit(scratch, 0, out, dstOfs, n))
	return out
}

func TestBlit_SelfOverlap(t *testing.T) {
	tests := []struct {
		name           string
		srcOfs, dstOfs int
	}{
		{"Forward", 10, 3},
		{"Backward", 3, 10},
		{"BarelyOverlapping", 0, 1},
		{"Identical", 5, 5},
		{"CrossWordForward", 70, 2},
		{"CrossWordBackward", 2, 70},
	}

	rng := rand.New(rand.NewSource(4711))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Init(150, func(int) bool { return rng.Intn(2) == 1 })
			require.NoError(t, err)

			expected := blitOracle(t, v, tt.srcOfs, tt.dstOfs, 60)

			require.NoError(t, Blit(v, tt.srcOfs, v, tt.dstOfs, 60))
			assert.Equal(t, expected.String(), v.String())
		})
	}
}
