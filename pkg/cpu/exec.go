package cpu

import "github.com/lr35902/sm83-core/pkg/inst"

// CPU is the arithmetic/logic execution unit. It owns a single register file
// which every Execute call mutates in place; there is no other state.
type CPU struct {
	*Registers
}

// New returns a CPU with a zero-initialized register file.
func New() *CPU {
	return &CPU{Registers: NewRegisters()}
}

// Execute runs one instruction against the register file: resolve the
// operand through the target selector, compute with natural wraparound,
// recompute all four flags from the true operands, write back. CP is the one
// operation that updates flags without writing back.
//
// Operation/selector pairings outside inst.Valid are unreachable from the
// decoder and the mnemonic parser; Execute panics on them.
func (c *CPU) Execute(in inst.Instruction) {
	switch in.Op {
	case inst.ADD:
		c.add(c.reg8(in.Target), false)
	case inst.ADC:
		c.add(c.reg8(in.Target), true)
	case inst.SUB:
		c.sub(c.reg8(in.Target), false)
	case inst.SBC:
		c.sub(c.reg8(in.Target), true)
	case inst.AND:
		c.A &= c.reg8(in.Target)
		c.F.set(c.A == 0, false, true, false)
	case inst.XOR:
		c.A ^= c.reg8(in.Target)
		c.F.set(c.A == 0, false, false, false)
	case inst.OR:
		c.A |= c.reg8(in.Target)
		c.F.set(c.A == 0, false, false, false)
	case inst.CP:
		c.compare(c.reg8(in.Target))
	case inst.INC:
		r := c.reg8ptr(in.Target)
		*r = c.increment(*r)
	case inst.DEC:
		r := c.reg8ptr(in.Target)
		*r = c.decrement(*r)
	case inst.ADDHL:
		c.addHL(c.pair(in.Target).Uint16())
	case inst.CCF:
		c.F.set(c.F.Zero, false, false, !c.F.Carry)
	case inst.SCF:
		c.F.set(c.F.Zero, false, false, true)
	case inst.CPL:
		c.A = ^c.A
		c.F.set(c.F.Zero, true, true, c.F.Carry)
	default:
		panic("unhandled operation in Execute")
	}
}

// reg8 resolves an 8-bit operand selector to its current value.
func (c *CPU) reg8(t inst.Target) uint8 {
	return *c.reg8ptr(t)
}

// reg8ptr resolves an 8-bit operand selector to its backing register.
func (c *CPU) reg8ptr(t inst.Target) *Register {
	switch t {
	case inst.A:
		return &c.A
	case inst.B:
		return &c.B
	case inst.C:
		return &c.C
	case inst.D:
		return &c.D
	case inst.E:
		return &c.E
	case inst.H:
		return &c.H
	case inst.L:
		return &c.L
	}
	panic("not an 8-bit register selector")
}

// pair resolves a 16-bit operand selector to its register pair.
func (c *CPU) pair(t inst.Target) *RegisterPair {
	switch t {
	case inst.BC:
		return c.BC
	case inst.DE:
		return c.DE
	case inst.HL:
		return c.HL
	}
	panic("not a register pair selector")
}

// add implements ADD A, r and ADC A, r. Half-carry is tested on the true
// operand nibbles (including the carry-in addend), never inferred from the
// truncated result; carry is unsigned 8-bit overflow.
func (c *CPU) add(n uint8, withCarry bool) {
	var carryIn uint8
	if withCarry && c.F.Carry {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(carryIn)
	half := c.A&0xF + n&0xF + carryIn
	c.A = uint8(sum)
	c.F.set(c.A == 0, false, half > 0xF, sum > 0xFF)
}

// sub implements SUB r and SBC A, r. Half-carry is the direct borrow test on
// the operand nibbles; carry is set when the subtrahend (plus borrow-in)
// exceeds the minuend.
func (c *CPU) sub(n uint8, withBorrow bool) {
	var borrowIn int16
	if withBorrow && c.F.Carry {
		borrowIn = 1
	}
	diff := int16(c.A) - int16(n) - borrowIn
	half := int16(c.A&0xF) - int16(n&0xF) - borrowIn
	c.A = uint8(diff)
	c.F.set(c.A == 0, true, half < 0, diff < 0)
}

// compare implements CP r: SUB flag derivation with the result discarded.
func (c *CPU) compare(n uint8) {
	diff := int16(c.A) - int16(n)
	c.F.set(uint8(diff) == 0, true, c.A&0xF < n&0xF, diff < 0)
}

// increment returns n+1. Half-carry is set exactly when the low nibble was
// 0xF before the increment; carry is left untouched.
func (c *CPU) increment(n uint8) uint8 {
	r := n + 1
	c.F.set(r == 0, false, n&0xF == 0xF, c.F.Carry)
	return r
}

// decrement returns n-1. Half-carry is set exactly when the low nibble was
// 0x0 before the decrement; carry is left untouched.
func (c *CPU) decrement(n uint8) uint8 {
	r := n - 1
	c.F.set(r == 0, true, n&0xF == 0x0, c.F.Carry)
	return r
}

// addHL implements ADD HL, rr: half-carry out of bit 11, carry out of bit 15.
// Zero is not affected on hardware.
func (c *CPU) addHL(v uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(v)
	c.F.set(c.F.Zero, false, hl&0x0FFF+v&0x0FFF > 0x0FFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}
