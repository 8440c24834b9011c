package bitarray

// operation combines corresponding bytes of the receiver and an
// operand.
type operation func(x, y byte) byte

// apply runs op over the receiver's full byte extent. A shorter
// operand is zero-extended; a longer one is truncated. The receiver
// never grows.
func (b *BitArray) apply(other *BitArray, op operation) {
	for i := range b.bits {
		var y byte
		if i < len(other.bits) {
			y = other.bits[i]
		}
		b.bits[i] = op(b.bits[i], y)
	}
}

// And keeps only the bits set in both containers.
func (b *BitArray) And(other *BitArray) {
	b.apply(other, func(x, y byte) byte { return x & y })
}

// Or keeps the bits set in either container.
func (b *BitArray) Or(other *BitArray) {
	b.apply(other, func(x, y byte) byte { return x | y })
}

// Xor keeps the bits set in exactly one of the two containers.
func (b *BitArray) Xor(other *BitArray) {
	b.apply(other, func(x, y byte) byte { return x ^ y })
}

// Nor is the complement of Or.
func (b *BitArray) Nor(other *BitArray) {
	b.apply(other, func(x, y byte) byte { return ^(x | y) })
}

// Xnor is the complement of Xor: set where the two containers agree.
func (b *BitArray) Xnor(other *BitArray) {
	b.apply(other, func(x, y byte) byte { return ^(x ^ y) })
}

// Nand is the complement of And.
func (b *BitArray) Nand(other *BitArray) {
	b.apply(other, func(x, y byte) byte { return ^(x & y) })
}

// Not complements every backing byte in place, including unaddressed
// high bits in the final partial byte.
func (b *BitArray) Not() {
	for i := range b.bits {
		b.bits[i] = ^b.bits[i]
	}
}
