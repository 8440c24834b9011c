// Package bitarray provides a dynamically-growable, bit-addressable
// container backed by a byte buffer, following the LSB pattern, where
// logical bit 0 is the least-significant bit of byte 0.
package bitarray

import (
	"fmt"
)

const (
	bitsPerByte = 8

	defaultNumBytes = 4
)

// BitArray is a mutable sequence of bits over an owned byte buffer.
// The buffer grows on demand and never shrinks; the logical bit size
// tracks the highest position ever addressed. A BitArray is not safe
// for concurrent mutation.
type BitArray struct {
	bits []byte
	size int
}

// New returns a BitArray of 4 zero bytes (32 bits).
func New() *BitArray {
	return &BitArray{
		bits: make([]byte, defaultNumBytes),
		size: defaultNumBytes * bitsPerByte,
	}
}

// NewLength returns a zeroed BitArray of the given bit length. The
// backing buffer is rounded up to whole bytes.
func NewLength(length int) (*BitArray, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: invalid `length`; expected: >= 0, given: %d", ErrInvalidArgument, length)
	}
	return &BitArray{
		bits: make([]byte, (length+bitsPerByte-1)/bitsPerByte),
		size: length,
	}, nil
}

// NewBytes returns a BitArray backed by a copy of b, where b[0] is
// byte 0 of the container.
func NewBytes(b []byte) *BitArray {
	bits := make([]byte, len(b))
	copy(bits, b)
	return &BitArray{
		bits: bits,
		size: len(b) * bitsPerByte,
	}
}

// grow extends the backing buffer to numBytes, preserving existing
// bytes and zero-filling new ones. It never shrinks.
func (b *BitArray) grow(numBytes int) {
	if numBytes <= len(b.bits) {
		return
	}
	bits := make([]byte, numBytes)
	copy(bits, b.bits)
	b.bits = bits
}

// Get returns the value of logical bit pos. The logical size, not the
// byte capacity, is the upper bound.
func (b *BitArray) Get(pos int) (bool, error) {
	if pos < 0 || pos >= b.size {
		return false, fmt.Errorf("%w: invalid `pos`; expected: 0 <= pos < %d, given: %d", ErrOutOfRange, b.size, pos)
	}
	return b.bits[pos/bitsPerByte]&(1<<(pos%bitsPerByte)) != 0, nil
}

// Set sets logical bit pos to val, growing the backing buffer if pos
// lies beyond it.
func (b *BitArray) Set(pos int, val bool) error {
	if pos < 0 {
		return fmt.Errorf("%w: invalid `pos`; expected: >= 0, given: %d", ErrInvalidArgument, pos)
	}
	return b.SetAt(pos/bitsPerByte, pos%bitsPerByte, val)
}

// SetAt sets the bit at bitOffset within byte byteIndex to val,
// growing the backing buffer if needed. The logical size only grows;
// writing to an already-addressed position never shrinks it.
func (b *BitArray) SetAt(byteIndex, bitOffset int, val bool) error {
	if byteIndex < 0 {
		return fmt.Errorf("%w: invalid `byteIndex`; expected: >= 0, given: %d", ErrInvalidArgument, byteIndex)
	}
	if bitOffset < 0 || bitOffset > 7 {
		return fmt.Errorf("%w: invalid `bitOffset`; expected: 0-7, given: %d", ErrInvalidArgument, bitOffset)
	}

	b.grow(byteIndex + 1)
	if val {
		b.bits[byteIndex] |= 1 << bitOffset
	} else {
		b.bits[byteIndex] &^= 1 << bitOffset
	}
	if pos := byteIndex*bitsPerByte + bitOffset + 1; pos > b.size {
		b.size = pos
	}
	return nil
}

// Active sets logical bit pos to 1.
func (b *BitArray) Active(pos int) error { return b.Set(pos, true) }

// Passive sets logical bit pos to 0.
func (b *BitArray) Passive(pos int) error { return b.Set(pos, false) }

// ActiveAt sets the bit at bitOffset within byte byteIndex to 1.
func (b *BitArray) ActiveAt(byteIndex, bitOffset int) error { return b.SetAt(byteIndex, bitOffset, true) }

// PassiveAt sets the bit at bitOffset within byte byteIndex to 0.
func (b *BitArray) PassiveAt(byteIndex, bitOffset int) error {
	return b.SetAt(byteIndex, bitOffset, false)
}

// NthByte returns byte n of the backing buffer. The byte capacity,
// not the logical size, is the upper bound.
func (b *BitArray) NthByte(n int) (byte, error) {
	if n < 0 || n >= len(b.bits) {
		return 0, fmt.Errorf("%w: invalid `n`; expected: 0 <= n < %d, given: %d", ErrOutOfRange, len(b.bits), n)
	}
	return b.bits[n], nil
}

// SetNthByte overwrites byte n of the backing buffer with value,
// growing the buffer if needed.
func (b *BitArray) SetNthByte(n int, value byte) error {
	if n < 0 {
		return fmt.Errorf("%w: invalid `n`; expected: >= 0, given: %d", ErrInvalidArgument, n)
	}

	b.grow(n + 1)
	b.bits[n] = value
	if pos := (n + 1) * bitsPerByte; pos > b.size {
		b.size = pos
	}
	return nil
}

// BitSize returns the logical bit length.
func (b *BitArray) BitSize() int { return b.size }

// ByteSize returns the backing buffer length.
func (b *BitArray) ByteSize() int { return len(b.bits) }

// Bytes returns a copy of the backing buffer.
func (b *BitArray) Bytes() []byte {
	bits := make([]byte, len(b.bits))
	copy(bits, b.bits)
	return bits
}

// Clone returns an independent copy. The two containers share no
// storage.
func (b *BitArray) Clone() *BitArray {
	return &BitArray{
		bits: b.Bytes(),
		size: b.size,
	}
}
