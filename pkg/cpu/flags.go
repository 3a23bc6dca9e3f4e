package cpu

// Flag bit positions in the packed F byte. The low nibble of F does not
// exist in silicon: it always reads back as zero.
const (
	flagZero      uint8 = 1 << 7
	flagSubtract  uint8 = 1 << 6
	flagHalfCarry uint8 = 1 << 5
	flagCarry     uint8 = 1 << 4
)

// Flags is the SM83 condition register: four independent booleans with a
// canonical packed-byte encoding. Instructions rewrite all four flags from
// the true operands; nothing is updated incrementally.
type Flags struct {
	Zero      bool // result of the last operation was zero
	Subtract  bool // last operation was a subtraction
	HalfCarry bool // carry or borrow across the nibble boundary
	Carry     bool // carry or borrow out of the full width
}

// Byte packs the four flags into the canonical F encoding:
// bit 7 = Z, bit 6 = N, bit 5 = H, bit 4 = C, bits 3-0 zero.
func (f *Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b |= flagZero
	}
	if f.Subtract {
		b |= flagSubtract
	}
	if f.HalfCarry {
		b |= flagHalfCarry
	}
	if f.Carry {
		b |= flagCarry
	}
	return b
}

// SetByte reconstructs the four flags from bits 7-4 of b. Bits 3-0 are
// discarded, so SetByte(b) followed by Byte() yields b & 0xF0.
func (f *Flags) SetByte(b uint8) {
	f.Zero = b&flagZero != 0
	f.Subtract = b&flagSubtract != 0
	f.HalfCarry = b&flagHalfCarry != 0
	f.Carry = b&flagCarry != 0
}

// set assigns all four flags at once.
func (f *Flags) set(z, n, h, c bool) {
	f.Zero = z
	f.Subtract = n
	f.HalfCarry = h
	f.Carry = c
}

// String renders the flags in the conventional "znhc" dump form, e.g. "Z-HC".
func (f Flags) String() string {
	b := []byte{'-', '-', '-', '-'}
	if f.Zero {
		b[0] = 'Z'
	}
	if f.Subtract {
		b[1] = 'N'
	}
	if f.HalfCarry {
		b[2] = 'H'
	}
	if f.Carry {
		b[3] = 'C'
	}
	return string(b)
}
