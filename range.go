package bitarray

import (
	"fmt"
)

// SetRange sets every bit in the half-open range [start, end) to val.
// Interior bytes are filled whole; the boundary bytes are touched only
// under their masks, so neighboring bits survive.
func (b *BitArray) SetRange(start, end int, val bool) error {
	if err := checkRange(start, end); err != nil {
		return err
	}

	si := start / bitsPerByte
	ei := (end - 1) / bitsPerByte
	b.grow(ei + 1)

	// startMask covers bits [start%8, 7], endMask covers [0, (end-1)%8].
	startMask := byte(0xFF << (start % bitsPerByte))
	endMask := byte(0xFF >> (7 - (end-1)%bitsPerByte))

	if si == ei {
		b.applyMask(si, startMask&endMask, val)
	} else {
		b.applyMask(si, startMask, val)
		b.applyMask(ei, endMask, val)

		fill := byte(0x00)
		if val {
			fill = 0xFF
		}
		for i := si + 1; i < ei; i++ {
			b.bits[i] = fill
		}
	}

	if end > b.size {
		b.size = end
	}
	return nil
}

func (b *BitArray) applyMask(i int, mask byte, val bool) {
	if val {
		b.bits[i] |= mask
	} else {
		b.bits[i] &^= mask
	}
}

// ActiveRange sets every bit in [start, end) to 1.
func (b *BitArray) ActiveRange(start, end int) error { return b.SetRange(start, end, true) }

// PassiveRange sets every bit in [start, end) to 0.
func (b *BitArray) PassiveRange(start, end int) error { return b.SetRange(start, end, false) }

// SetByteRange writes value to every byte index in [start, end),
// growing the backing buffer if needed.
func (b *BitArray) SetByteRange(start, end int, value byte) error {
	if err := checkRange(start, end); err != nil {
		return err
	}

	b.grow(end)
	for i := start; i < end; i++ {
		b.bits[i] = value
	}
	if pos := end * bitsPerByte; pos > b.size {
		b.size = pos
	}
	return nil
}

// ByteRange returns a copy of byte indices [start, end) of the backing
// buffer.
func (b *BitArray) ByteRange(start, end int) ([]byte, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	if end > len(b.bits) {
		return nil, fmt.Errorf("%w: invalid `end`; expected: <= %d, given: %d", ErrOutOfRange, len(b.bits), end)
	}

	bits := make([]byte, end-start)
	copy(bits, b.bits[start:end])
	return bits, nil
}

func checkRange(start, end int) error {
	if start < 0 {
		return fmt.Errorf("%w: invalid `start`; expected: >= 0, given: %d", ErrInvalidArgument, start)
	}
	if start >= end {
		return fmt.Errorf("%w: invalid range; expected: start < end, given: [%d, %d)", ErrInvalidArgument, start, end)
	}
	return nil
}
