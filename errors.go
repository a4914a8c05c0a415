package bitv

import "fmt"

// ErrInvalidSize indicates a negative or over-capacity length passed to a
// constructor.
type ErrInvalidSize struct {
	Size int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid size: %d (max %d)", e.Size, MaxLen)
}

// ErrIndexOutOfRange indicates an index outside [0, Len) passed to a checked
// accessor.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (len %d)", e.Index, e.Len)
}

// ErrInvalidRange indicates a malformed offset/count pair passed to Sub, Fill
// or Blit: negative offset, negative count, or a range extending past Len.
type ErrInvalidRange struct {
	Offset int
	Count  int
	Len    int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range: offset %d count %d (len %d)", e.Offset, e.Count, e.Len)
}

// ErrLengthMismatch indicates a binary bitwise operation on operands of
// different lengths.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidFormat indicates a character other than '0' or '1' in a string
// passed to FromString or UnmarshalText.
type ErrInvalidFormat struct {
	Pos  int
	Char rune
}

func (e *ErrInvalidFormat) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}
