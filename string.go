package bitv

// String returns the contents of v as a string of '0' and '1' characters,
// one per bit in ascending index order. It is the inverse of FromString.
func (v *BitVector) String() string {
	buf := make([]byte, v.length)
	for i := range buf {
		if v.UncheckedGet(i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// FromString creates a BitVector from a string of '0' and '1' characters,
// one per bit in ascending index order. It fails with ErrInvalidFormat on
// any other character.
func FromString(s string) (*BitVector, error) {
	v, err := New(len(s), false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v.UncheckedSet(i, true)
		case '0':
		default:
			return nil, &ErrInvalidFormat{Pos: i, Char: rune(s[i])}
		}
	}
	return v, nil
}

// MarshalText implements encoding.TextMarshaler using the same '0'/'1'
// encoding as String.
func (v *BitVector) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It replaces the
// contents of v; on failure v is left unchanged.
func (v *BitVector) UnmarshalText(text []byte) error {
	w, err := FromString(string(text))
	if err != nil {
		return err
	}
	*v = *w
	return nil
}
