package cpu

// Register is an 8-bit CPU register.
type Register = uint8

// PairLow is the capability the low slot of a register pair needs: read
// itself as a byte and overwrite itself from a byte. Two implementations
// exist, a plain byte register and the flags register, so the same pair
// logic serves AF alongside BC, DE and HL.
type PairLow interface {
	Byte() uint8
	SetByte(uint8)
}

// byteLow adapts a plain 8-bit register to the PairLow interface.
type byteLow struct {
	reg *Register
}

func (b byteLow) Byte() uint8     { return *b.reg }
func (b byteLow) SetByte(v uint8) { *b.reg = v }

// RegisterPair combines two adjacent 8-bit slots into one 16-bit value,
// high slot in bits 15-8, low slot in bits 7-0.
type RegisterPair struct {
	high *Register
	low  PairLow
}

// Uint16 returns the combined 16-bit value of the pair.
func (p *RegisterPair) Uint16() uint16 {
	return uint16(*p.high)<<8 | uint16(p.low.Byte())
}

// SetUint16 writes the high slot from bits 15-8 and the low slot through its
// own byte coercion. When the low slot is the flags register this drops the
// low nibble, so AF reads back as v & 0xFFF0.
func (p *RegisterPair) SetUint16(v uint16) {
	*p.high = uint8(v >> 8)
	p.low.SetByte(uint8(v))
}

// Registers is the SM83 register file: seven 8-bit general registers, the
// flags register, and the four logical 16-bit pair views over them.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register
	F Flags

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// NewRegisters returns a zero-initialized register file with the pair views
// wired to their backing registers.
func NewRegisters() *Registers {
	r := &Registers{}
	r.AF = &RegisterPair{&r.A, &r.F}
	r.BC = &RegisterPair{&r.B, byteLow{&r.C}}
	r.DE = &RegisterPair{&r.D, byteLow{&r.E}}
	r.HL = &RegisterPair{&r.H, byteLow{&r.L}}
	return r
}
