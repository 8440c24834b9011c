package bitarray

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
)

// NewInt8 returns a 1-byte BitArray holding v.
func NewInt8(v int8) *BitArray {
	return &BitArray{
		bits: []byte{byte(v)},
		size: 8,
	}
}

// NewInt16 returns a 2-byte BitArray holding v, least-significant
// byte first.
func NewInt16(v int16) *BitArray {
	bits := make([]byte, 2)
	binary.LittleEndian.PutUint16(bits, uint16(v))
	return &BitArray{bits: bits, size: 16}
}

// NewInt32 returns a 4-byte BitArray holding v, least-significant
// byte first.
func NewInt32(v int32) *BitArray {
	bits := make([]byte, 4)
	binary.LittleEndian.PutUint32(bits, uint32(v))
	return &BitArray{bits: bits, size: 32}
}

// NewInt64 returns an 8-byte BitArray holding v, least-significant
// byte first.
func NewInt64(v int64) *BitArray {
	bits := make([]byte, 8)
	binary.LittleEndian.PutUint64(bits, uint64(v))
	return &BitArray{bits: bits, size: 64}
}

// NewText returns a BitArray backed by the encoding of s under enc,
// where nil means UTF-8. The encoded bytes are used in encoding
// order: byte 0 of the container is the first encoded byte. Note that
// this deviates from the little-endian convention of the integer
// constructors.
func NewText(s string, enc encoding.Encoding) (*BitArray, error) {
	bits := []byte(s)
	if enc != nil {
		var err error
		bits, err = enc.NewEncoder().Bytes(bits)
		if err != nil {
			return nil, fmt.Errorf("failed to encode text: %w", err)
		}
	}
	return &BitArray{
		bits: bits,
		size: len(bits) * bitsPerByte,
	}, nil
}

// Parse reads a string of '0'/'1' digits, ignoring whitespace. The
// rightmost digit maps to logical bit 0. An empty string yields a
// zero-length BitArray.
func Parse(s string) (*BitArray, error) {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == '0' || r == '1':
			digits = append(digits, r)
		case unicode.IsSpace(r):
			// Whitespace is a digit-group separator.
		default:
			return nil, fmt.Errorf("%w: invalid digit; expected: '0' or '1', given: %q", ErrInvalidArgument, r)
		}
	}

	b := &BitArray{
		bits: make([]byte, (len(digits)+bitsPerByte-1)/bitsPerByte),
		size: len(digits),
	}
	for i, r := range digits {
		if r == '1' {
			pos := len(digits) - 1 - i
			b.bits[pos/bitsPerByte] |= 1 << (pos % bitsPerByte)
		}
	}
	return b, nil
}

// String renders the backing bytes from the highest index down to 0,
// each byte most-significant bit first, separated by single spaces.
// Parse accepts the rendered form back.
func (b *BitArray) String() string {
	if len(b.bits) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(b.bits) * (bitsPerByte + 1))
	for i := len(b.bits) - 1; i >= 0; i-- {
		for j := bitsPerByte - 1; j >= 0; j-- {
			if b.bits[i]&(1<<j) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
