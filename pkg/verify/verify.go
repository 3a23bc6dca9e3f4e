// Package verify sweeps the execution core's whole input domain and checks
// it against independently stated laws: arithmetic modulo 256/65536, the
// flag policy per operation, encoding round-trips, and the register-file
// pair invariants. It backs both the test suite and the CLI verify command.
package verify

import (
	"fmt"

	"github.com/lr35902/sm83-core/pkg/cpu"
	"github.com/lr35902/sm83-core/pkg/inst"
)

// Failure records one input for which the core broke a property.
type Failure struct {
	Property string
	Detail   string
}

func (f Failure) String() string {
	return f.Property + ": " + f.Detail
}

// Property is a named contract of the execution core. Check returns the
// first violating input it finds, or nil.
type Property struct {
	Name  string
	Check func() *Failure
}

// Properties returns the full battery, in a fixed order.
func Properties() []Property {
	return []Property{
		{"add-wraparound", checkAddWraparound},
		{"adc-carry-chain", checkAdcCarryChain},
		{"sub-borrow", checkSubBorrow},
		{"sbc-borrow-chain", checkSbcBorrowChain},
		{"cp-preserves-registers", checkComparePure},
		{"logic-flag-policy", checkLogicFlags},
		{"inc-dec-preserve-carry", checkIncDecCarry},
		{"addhl-carries", checkAddHL},
		{"flag-byte-roundtrip", checkFlagByteRoundTrip},
		{"pair-roundtrip", checkPairRoundTrip},
	}
}

func fail(format string, args ...any) *Failure {
	return &Failure{Detail: fmt.Sprintf(format, args...)}
}

// rep16 is the representative 16-bit sweep used where the full 2^32 product
// of two 16-bit operands is out of reach.
var rep16 = []uint16{
	0x0000, 0x0001, 0x00FF, 0x0100, 0x0FFF, 0x1000, 0x1FFE, 0x7FFF,
	0x8000, 0x8001, 0x8FFF, 0x9000, 0xEFFF, 0xF000, 0xFFFE, 0xFFFF,
	0x1234, 0x4321, 0x0F0F, 0xF0F0, 0x5555, 0xAAAA, 0xDEAD, 0xBEEF,
}

// checkAddWraparound: for all a, b: ADD leaves (a+b) mod 256 in A, carry set
// iff a+b >= 256, half-carry from the operand nibbles, subtract clear.
func checkAddWraparound() *Failure {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c := cpu.New()
			c.A, c.B = uint8(a), uint8(b)
			c.Execute(inst.Instruction{Op: inst.ADD, Target: inst.B})

			want := uint8(a + b)
			if c.A != want {
				return fail("ADD %02X+%02X: A=%02X want %02X", a, b, c.A, want)
			}
			if c.F.Carry != (a+b > 0xFF) {
				return fail("ADD %02X+%02X: carry=%v", a, b, c.F.Carry)
			}
			if c.F.HalfCarry != (a&0xF+b&0xF > 0xF) {
				return fail("ADD %02X+%02X: half=%v", a, b, c.F.HalfCarry)
			}
			if c.F.Zero != (want == 0) || c.F.Subtract {
				return fail("ADD %02X+%02X: flags %s", a, b, c.F)
			}
		}
	}
	return nil
}

// checkAdcCarryChain: ADC equals ADD with the carry-in folded into both the
// sum and the nibble test, over all (a, b, carry-in).
func checkAdcCarryChain() *Failure {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for ci := 0; ci <= 1; ci++ {
				c := cpu.New()
				c.A, c.B = uint8(a), uint8(b)
				c.F.Carry = ci == 1
				c.Execute(inst.Instruction{Op: inst.ADC, Target: inst.B})

				sum := a + b + ci
				if c.A != uint8(sum) {
					return fail("ADC %02X+%02X+%d: A=%02X want %02X", a, b, ci, c.A, uint8(sum))
				}
				if c.F.Carry != (sum > 0xFF) {
					return fail("ADC %02X+%02X+%d: carry=%v", a, b, ci, c.F.Carry)
				}
				if c.F.HalfCarry != (a&0xF+b&0xF+ci > 0xF) {
					return fail("ADC %02X+%02X+%d: half=%v", a, b, ci, c.F.HalfCarry)
				}
			}
		}
	}
	return nil
}

// checkSubBorrow: SUB wraps modulo 256, carry set iff minuend < subtrahend,
// half-carry from the direct nibble borrow, subtract always set.
func checkSubBorrow() *Failure {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c := cpu.New()
			c.A, c.E = uint8(a), uint8(b)
			c.Execute(inst.Instruction{Op: inst.SUB, Target: inst.E})

			want := uint8(a - b)
			if c.A != want {
				return fail("SUB %02X-%02X: A=%02X want %02X", a, b, c.A, want)
			}
			if c.F.Carry != (a < b) {
				return fail("SUB %02X-%02X: carry=%v", a, b, c.F.Carry)
			}
			if c.F.HalfCarry != (a&0xF < b&0xF) {
				return fail("SUB %02X-%02X: half=%v", a, b, c.F.HalfCarry)
			}
			if !c.F.Subtract || c.F.Zero != (want == 0) {
				return fail("SUB %02X-%02X: flags %s", a, b, c.F)
			}
		}
	}
	return nil
}

// checkSbcBorrowChain: SBC equals SUB with the borrow-in folded into both
// the difference and the nibble test, over all (a, b, borrow-in).
func checkSbcBorrowChain() *Failure {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for bi := 0; bi <= 1; bi++ {
				c := cpu.New()
				c.A, c.E = uint8(a), uint8(b)
				c.F.Carry = bi == 1
				c.Execute(inst.Instruction{Op: inst.SBC, Target: inst.E})

				diff := a - b - bi
				if c.A != uint8(diff) {
					return fail("SBC %02X-%02X-%d: A=%02X want %02X", a, b, bi, c.A, uint8(diff))
				}
				if c.F.Carry != (diff < 0) {
					return fail("SBC %02X-%02X-%d: carry=%v", a, b, bi, c.F.Carry)
				}
				if c.F.HalfCarry != (int(a&0xF)-int(b&0xF)-bi < 0) {
					return fail("SBC %02X-%02X-%d: half=%v", a, b, bi, c.F.HalfCarry)
				}
			}
		}
	}
	return nil
}

// checkComparePure: CP updates flags exactly like SUB but leaves every
// register untouched, over all (a, b) and every 8-bit selector.
func checkComparePure() *Failure {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c := cpu.New()
			c.A, c.B, c.C, c.D = uint8(a), uint8(b), 0x33, 0x44
			c.E, c.H, c.L = 0x55, 0x66, 0x77
			c.Execute(inst.Instruction{Op: inst.CP, Target: inst.B})

			if c.A != uint8(a) || c.B != uint8(b) ||
				c.C != 0x33 || c.D != 0x44 || c.E != 0x55 || c.H != 0x66 || c.L != 0x77 {
				return fail("CP %02X,%02X mutated registers", a, b)
			}
			if c.F.Carry != (a < b) || c.F.Zero != (a == b) || !c.F.Subtract {
				return fail("CP %02X,%02X: flags %s", a, b, c.F)
			}
		}
	}
	return nil
}

// checkLogicFlags: AND forces half-carry, OR and XOR clear it; all three
// clear subtract and carry and derive zero from the result.
func checkLogicFlags() *Failure {
	type logic struct {
		op   inst.Op
		eval func(a, b uint8) uint8
		half bool
	}
	ops := []logic{
		{inst.AND, func(a, b uint8) uint8 { return a & b }, true},
		{inst.OR, func(a, b uint8) uint8 { return a | b }, false},
		{inst.XOR, func(a, b uint8) uint8 { return a ^ b }, false},
	}
	for _, l := range ops {
		for a := 0; a < 256; a++ {
			for b := 0; b < 256; b++ {
				c := cpu.New()
				c.A, c.L = uint8(a), uint8(b)
				c.F.Carry = true // must be cleared
				c.Execute(inst.Instruction{Op: l.op, Target: inst.L})

				want := l.eval(uint8(a), uint8(b))
				if c.A != want {
					return fail("%v %02X,%02X: A=%02X want %02X", l.op, a, b, c.A, want)
				}
				if c.F.HalfCarry != l.half || c.F.Carry || c.F.Subtract || c.F.Zero != (want == 0) {
					return fail("%v %02X,%02X: flags %s", l.op, a, b, c.F)
				}
			}
		}
	}
	return nil
}

// checkIncDecCarry: INC and DEC never write the carry flag, over every value
// and both prior carry states.
func checkIncDecCarry() *Failure {
	for v := 0; v < 256; v++ {
		for _, carry := range []bool{false, true} {
			c := cpu.New()
			c.D = uint8(v)
			c.F.Carry = carry
			c.Execute(inst.Instruction{Op: inst.INC, Target: inst.D})
			if c.D != uint8(v+1) || c.F.Carry != carry {
				return fail("INC %02X carry=%v: D=%02X carry=%v", v, carry, c.D, c.F.Carry)
			}
			if c.F.HalfCarry != (v&0xF == 0xF) || c.F.Subtract {
				return fail("INC %02X: flags %s", v, c.F)
			}

			c = cpu.New()
			c.D = uint8(v)
			c.F.Carry = carry
			c.Execute(inst.Instruction{Op: inst.DEC, Target: inst.D})
			if c.D != uint8(v-1) || c.F.Carry != carry {
				return fail("DEC %02X carry=%v: D=%02X carry=%v", v, carry, c.D, c.F.Carry)
			}
			if c.F.HalfCarry != (v&0xF == 0x0) || !c.F.Subtract {
				return fail("DEC %02X: flags %s", v, c.F)
			}
		}
	}
	return nil
}

// checkAddHL: ADD HL, rr wraps modulo 65536 with half-carry out of bit 11,
// carry out of bit 15, and the zero flag untouched. Swept over the
// representative 16-bit values, both via BC and via the HL-doubling form.
func checkAddHL() *Failure {
	for _, hl := range rep16 {
		for _, v := range rep16 {
			for _, zero := range []bool{false, true} {
				c := cpu.New()
				c.HL.SetUint16(hl)
				c.BC.SetUint16(v)
				c.F.Zero = zero
				c.Execute(inst.Instruction{Op: inst.ADDHL, Target: inst.BC})

				sum := uint32(hl) + uint32(v)
				if got := c.HL.Uint16(); got != uint16(sum) {
					return fail("ADD HL %04X+%04X: HL=%04X want %04X", hl, v, got, uint16(sum))
				}
				if c.F.Carry != (sum > 0xFFFF) {
					return fail("ADD HL %04X+%04X: carry=%v", hl, v, c.F.Carry)
				}
				if c.F.HalfCarry != (hl&0x0FFF+v&0x0FFF > 0x0FFF) {
					return fail("ADD HL %04X+%04X: half=%v", hl, v, c.F.HalfCarry)
				}
				if c.F.Zero != zero || c.F.Subtract {
					return fail("ADD HL %04X+%04X: flags %s", hl, v, c.F)
				}
			}
		}

		// ADD HL, HL doubles the operand read at fetch time.
		c := cpu.New()
		c.HL.SetUint16(hl)
		c.Execute(inst.Instruction{Op: inst.ADDHL, Target: inst.HL})
		if got := c.HL.Uint16(); got != uint16(uint32(hl)*2) {
			return fail("ADD HL, HL %04X: HL=%04X", hl, got)
		}
	}
	return nil
}

// checkFlagByteRoundTrip: decode-then-encode masks any byte to its top
// nibble, and encode-then-decode is the identity on flag values.
func checkFlagByteRoundTrip() *Failure {
	for b := 0; b < 256; b++ {
		var f cpu.Flags
		f.SetByte(uint8(b))
		if got := f.Byte(); got != uint8(b)&0xF0 {
			return fail("flags byte %02X round-trips to %02X", b, got)
		}
	}
	for i := 0; i < 16; i++ {
		f := cpu.Flags{
			Zero:      i&8 != 0,
			Subtract:  i&4 != 0,
			HalfCarry: i&2 != 0,
			Carry:     i&1 != 0,
		}
		var back cpu.Flags
		back.SetByte(f.Byte())
		if back != f {
			return fail("flags %s do not survive the byte encoding", f)
		}
	}
	return nil
}

// checkPairRoundTrip: set-then-get is the identity on every pair for every
// 16-bit value, with AF masking its low nibble to zero.
func checkPairRoundTrip() *Failure {
	for v := 0; v <= 0xFFFF; v++ {
		c := cpu.New()
		pairs := []struct {
			name string
			p    *cpu.RegisterPair
			mask uint16
		}{
			{"BC", c.BC, 0xFFFF},
			{"DE", c.DE, 0xFFFF},
			{"HL", c.HL, 0xFFFF},
			{"AF", c.AF, 0xFFF0},
		}
		for _, pr := range pairs {
			pr.p.SetUint16(uint16(v))
			if got := pr.p.Uint16(); got != uint16(v)&pr.mask {
				return fail("%s set %04X reads %04X", pr.name, v, got)
			}
			// set(get) must be the identity on whatever is stored.
			stored := pr.p.Uint16()
			pr.p.SetUint16(stored)
			if pr.p.Uint16() != stored {
				return fail("%s set(get) not identity at %04X", pr.name, v)
			}
		}
	}
	return nil
}
